package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateReferralRequest deliberately has no status or creator fields:
// status is forced to pending and attribution comes from the session.
type CreateReferralRequest struct {
	PatientName    string `json:"patientName" validate:"required"`
	PatientAge     *int   `json:"patientAge" validate:"required,gte=0"`
	PatientGender  string `json:"patientGender" validate:"required"`
	ChiefComplaint string `json:"chiefComplaint" validate:"required"`
	Notes          string `json:"notes" validate:"omitempty"`
	FromFacility   string `json:"fromFacility" validate:"required"`
	ToFacility     string `json:"toFacility" validate:"required"`
	Priority       string `json:"priority" validate:"required,oneof=routine urgent emergency"`
}

type UpdateReferralStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted completed cancelled"`
}

// Response DTOs

type ReferralResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientName    string    `json:"patientName"`
	PatientAge     int       `json:"patientAge"`
	PatientGender  string    `json:"patientGender"`
	ChiefComplaint string    `json:"chiefComplaint"`
	Notes          string    `json:"notes,omitempty"`
	FromFacility   string    `json:"fromFacility"`
	ToFacility     string    `json:"toFacility"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"createdBy"`
	CreatedByName  string    `json:"createdByName"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ReferralListResponse struct {
	Referrals []ReferralResponse `json:"referrals"`
	Total     int                `json:"total"`
}
