package showcase

import (
	"time"

	"github.com/google/uuid"
)

// DeliveredComputer is a completed sale shown on the public site as
// social proof.
type DeliveredComputer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Customer     string    `json:"customer"`
	DeliveryDate time.Time `json:"delivery_date"`
	Location     string    `json:"location"`
	Specs        []string  `json:"specs"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateDeliveredRequest struct {
	Name         string    `json:"name"`
	Customer     string    `json:"customer"`
	DeliveryDate time.Time `json:"delivery_date"`
	Location     string    `json:"location"`
	Specs        []string  `json:"specs"`
	ImageURL     string    `json:"image_url"`
}

type UpdateDeliveredRequest struct {
	Name         *string    `json:"name,omitempty"`
	Customer     *string    `json:"customer,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Specs        *[]string  `json:"specs,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
}

func (d *DeliveredComputer) normalize() {
	if d.Specs == nil {
		d.Specs = []string{}
	}
}
