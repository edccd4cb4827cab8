package converter

import (
	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/entity"
)

// FacilityToResponse converts a Facility entity to FacilityResponse DTO
func FacilityToResponse(facility *entity.Facility) *dto.FacilityResponse {
	if facility == nil {
		return nil
	}

	services := facility.Services
	if services == nil {
		services = entity.ServiceList{}
	}

	return &dto.FacilityResponse{
		ID:            facility.ID,
		Name:          facility.Name,
		Type:          string(facility.Type),
		Address:       facility.Address,
		ContactNumber: facility.ContactNumber,
		Services:      services,
		Capacity:      facility.Capacity,
		CreatedAt:     facility.CreatedAt,
	}
}

// FacilitiesToResponses converts a slice of Facility entities to response DTOs
func FacilitiesToResponses(facilities []entity.Facility) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, 0, len(facilities))
	for i := range facilities {
		responses = append(responses, *FacilityToResponse(&facilities[i]))
	}
	return responses
}
