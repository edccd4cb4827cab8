package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHotlineRequest struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=ambulance hospital emergency government other"`
	Number       string `json:"number" validate:"required"`
	Description  string `json:"description" validate:"omitempty"`
	Available24h bool   `json:"available24h"`
}

// Response DTOs

type HotlineResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Number       string    `json:"number"`
	Description  string    `json:"description,omitempty"`
	Available24h bool      `json:"available24h"`
	CreatedAt    time.Time `json:"createdAt"`
}

type HotlineListResponse struct {
	Hotlines []HotlineResponse `json:"hotlines"`
	Total    int               `json:"total"`
}
