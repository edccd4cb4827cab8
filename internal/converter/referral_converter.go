package converter

import (
	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/entity"
)

// ReferralToResponse converts a Referral entity to ReferralResponse DTO
func ReferralToResponse(referral *entity.Referral) *dto.ReferralResponse {
	if referral == nil {
		return nil
	}

	return &dto.ReferralResponse{
		ID:             referral.ID,
		PatientName:    referral.PatientName,
		PatientAge:     referral.PatientAge,
		PatientGender:  referral.PatientGender,
		ChiefComplaint: referral.ChiefComplaint,
		Notes:          referral.Notes,
		FromFacility:   referral.FromFacility,
		ToFacility:     referral.ToFacility,
		Priority:       string(referral.Priority),
		Status:         string(referral.Status),
		CreatedBy:      referral.CreatedBy,
		CreatedByName:  referral.CreatedByName,
		CreatedAt:      referral.CreatedAt,
		UpdatedAt:      referral.UpdatedAt,
	}
}

// ReferralsToResponses converts a slice of Referral entities to response DTOs
func ReferralsToResponses(referrals []entity.Referral) []dto.ReferralResponse {
	responses := make([]dto.ReferralResponse, 0, len(referrals))
	for i := range referrals {
		responses = append(responses, *ReferralToResponse(&referrals[i]))
	}
	return responses
}
