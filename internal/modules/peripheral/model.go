package peripheral

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Peripheral is an accessory sold alongside the computer builds.
type Peripheral struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Specs           []string        `json:"specs"`
	Highlight       bool            `json:"highlight"`
	HighlightLabel  string          `json:"highlight_label"`
	HighlightColor  string          `json:"highlight_color"`
	ImageURL        string          `json:"image_url"`
	SecondaryImages []string        `json:"secondary_images"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreatePeripheralRequest struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Specs           []string        `json:"specs"`
	Highlight       bool            `json:"highlight"`
	HighlightLabel  string          `json:"highlight_label"`
	HighlightColor  string          `json:"highlight_color"`
	ImageURL        string          `json:"image_url"`
	SecondaryImages []string        `json:"secondary_images"`
}

// UpdatePeripheralRequest carries only the fields the caller set.
type UpdatePeripheralRequest struct {
	Name            *string          `json:"name,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Specs           *[]string        `json:"specs,omitempty"`
	Highlight       *bool            `json:"highlight,omitempty"`
	HighlightLabel  *string          `json:"highlight_label,omitempty"`
	HighlightColor  *string          `json:"highlight_color,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	SecondaryImages *[]string        `json:"secondary_images,omitempty"`
}

func (p *Peripheral) normalize() {
	if p.Specs == nil {
		p.Specs = []string{}
	}
	if p.SecondaryImages == nil {
		p.SecondaryImages = []string{}
	}
}
