package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Computer is the admin-side inventory record. It lives in its own
// table, separate from the public catalog: the two surfaces grew
// independently and are deliberately not unified here.
type Computer struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	GPU             string          `json:"gpu"`
	CPU             string          `json:"cpu"`
	RAM             string          `json:"ram"`
	Storage         string          `json:"storage"`
	Motherboard     string          `json:"motherboard"`
	Cooler          string          `json:"cooler"`
	Watercooler     string          `json:"watercooler"`
	Sold            bool            `json:"sold"`
	BorderColor     string          `json:"border_color"`
	ImageURL        string          `json:"image_url"`
	SecondaryImages []string        `json:"secondary_images"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreateComputerRequest struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	GPU             string          `json:"gpu"`
	CPU             string          `json:"cpu"`
	RAM             string          `json:"ram"`
	Storage         string          `json:"storage"`
	Motherboard     string          `json:"motherboard"`
	Cooler          string          `json:"cooler"`
	Watercooler     string          `json:"watercooler"`
	BorderColor     string          `json:"border_color"`
	ImageURL        string          `json:"image_url"`
	SecondaryImages []string        `json:"secondary_images"`
}

type UpdateComputerRequest struct {
	Name            *string          `json:"name,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	GPU             *string          `json:"gpu,omitempty"`
	CPU             *string          `json:"cpu,omitempty"`
	RAM             *string          `json:"ram,omitempty"`
	Storage         *string          `json:"storage,omitempty"`
	Motherboard     *string          `json:"motherboard,omitempty"`
	Cooler          *string          `json:"cooler,omitempty"`
	Watercooler     *string          `json:"watercooler,omitempty"`
	Sold            *bool            `json:"sold,omitempty"`
	BorderColor     *string          `json:"border_color,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	SecondaryImages *[]string        `json:"secondary_images,omitempty"`
}

func (c *Computer) normalize() {
	if c.SecondaryImages == nil {
		c.SecondaryImages = []string{}
	}
}
