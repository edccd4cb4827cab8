package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateFacilityRequest takes services as a single comma-separated string,
// the way the facility form submits it; the usecase splits and trims it.
// Capacity is validated here so a non-numeric or non-positive value is
// rejected at the boundary instead of being persisted.
type CreateFacilityRequest struct {
	Name          string `json:"name" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=BHS Hospital"`
	Address       string `json:"address" validate:"omitempty"`
	ContactNumber string `json:"contactNumber" validate:"omitempty"`
	Services      string `json:"services" validate:"omitempty"`
	Capacity      int    `json:"capacity" validate:"required,gte=1"`
}

// Response DTOs

type FacilityResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	Services      []string  `json:"services"`
	Capacity      int       `json:"capacity"`
	CreatedAt     time.Time `json:"createdAt"`
}

type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}
