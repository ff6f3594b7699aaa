package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// SoldComputer is an admin-curated portfolio entry for a completed
// build.
type SoldComputer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Customer    string    `json:"customer"`
	SoldDate    time.Time `json:"sold_date"`
	Location    string    `json:"location"`
	Specs       []string  `json:"specs"`
	ImageURL    string    `json:"image_url"`
	BorderColor string    `json:"border_color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSoldRequest struct {
	Name        string    `json:"name"`
	Customer    string    `json:"customer"`
	SoldDate    time.Time `json:"sold_date"`
	Location    string    `json:"location"`
	Specs       []string  `json:"specs"`
	ImageURL    string    `json:"image_url"`
	BorderColor string    `json:"border_color"`
}

type UpdateSoldRequest struct {
	Name        *string    `json:"name,omitempty"`
	Customer    *string    `json:"customer,omitempty"`
	SoldDate    *time.Time `json:"sold_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Specs       *[]string  `json:"specs,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	BorderColor *string    `json:"border_color,omitempty"`
}

func (s *SoldComputer) normalize() {
	if s.Specs == nil {
		s.Specs = []string{}
	}
}
