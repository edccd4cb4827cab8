package converter

import (
	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/entity"
)

// HotlineToResponse converts a Hotline entity to HotlineResponse DTO
func HotlineToResponse(hotline *entity.Hotline) *dto.HotlineResponse {
	if hotline == nil {
		return nil
	}

	return &dto.HotlineResponse{
		ID:           hotline.ID,
		Name:         hotline.Name,
		Category:     string(hotline.Category),
		Number:       hotline.Number,
		Description:  hotline.Description,
		Available24h: hotline.Available24h,
		CreatedAt:    hotline.CreatedAt,
	}
}

// HotlinesToResponses converts a slice of Hotline entities to response DTOs
func HotlinesToResponses(hotlines []entity.Hotline) []dto.HotlineResponse {
	responses := make([]dto.HotlineResponse, 0, len(hotlines))
	for i := range hotlines {
		responses = append(responses, *HotlineToResponse(&hotlines[i]))
	}
	return responses
}
