package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Computer is a build offered on the public storefront.
type Computer struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Specs           []string        `json:"specs"`
	SpecIcons       []string        `json:"spec_icons"`
	Highlight       bool            `json:"highlight"`
	HighlightLabel  string          `json:"highlight_label"`
	HighlightColor  string          `json:"highlight_color"`
	ImageURL        string          `json:"image_url"`
	SecondaryImages []string        `json:"secondary_images"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateComputerRequest holds the data for adding a computer. List
// fields left out default to empty, never null.
type CreateComputerRequest struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Specs           []string        `json:"specs"`
	SpecIcons       []string        `json:"spec_icons"`
	Highlight       bool            `json:"highlight"`
	HighlightLabel  string          `json:"highlight_label"`
	HighlightColor  string          `json:"highlight_color"`
	ImageURL        string          `json:"image_url"`
	SecondaryImages []string        `json:"secondary_images"`
}

// UpdateComputerRequest carries only the fields the caller set; nil
// means "leave unchanged", so an update can never implicitly null a
// field out.
type UpdateComputerRequest struct {
	Name            *string          `json:"name,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Specs           *[]string        `json:"specs,omitempty"`
	SpecIcons       *[]string        `json:"spec_icons,omitempty"`
	Highlight       *bool            `json:"highlight,omitempty"`
	HighlightLabel  *string          `json:"highlight_label,omitempty"`
	HighlightColor  *string          `json:"highlight_color,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	SecondaryImages *[]string        `json:"secondary_images,omitempty"`
}

// normalize guarantees the in-memory invariant that list fields are
// never nil, whatever shape the row came back in.
func (c *Computer) normalize() {
	if c.Specs == nil {
		c.Specs = []string{}
	}
	if c.SpecIcons == nil {
		c.SpecIcons = []string{}
	}
	if c.SecondaryImages == nil {
		c.SecondaryImages = []string{}
	}
}
