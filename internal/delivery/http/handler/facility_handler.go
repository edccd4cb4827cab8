package handler

import (
	"encoding/json"
	"net/http"

	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/entity"
	"bhrms/internal/usecase"
	"bhrms/pkg/response"
	"bhrms/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
	validator       *validator.CustomValidator
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase, validator *validator.CustomValidator) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
		validator:       validator,
	}
}

// CreateFacility handles admin facility creation
// @Summary Create a facility
// @Tags Facilities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/facilities [post]
func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	facility, err := h.facilityUsecase.CreateFacility(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create facility")
		return
	}

	response.Success(w, http.StatusCreated, "Facility created successfully", facility)
}

// GetAllFacilities handles listing facilities
// @Summary List facilities
// @Tags Facilities
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by facility type"
// @Success 200 {object} response.Response
// @Router /facilities [get]
func (h *FacilityHandler) GetAllFacilities(w http.ResponseWriter, r *http.Request) {
	facilityType := entity.FacilityType(r.URL.Query().Get("type"))
	if facilityType != "" && !entity.IsValidFacilityType(facilityType) {
		response.Error(w, http.StatusBadRequest, "Invalid facility type filter", nil)
		return
	}

	facilities, err := h.facilityUsecase.GetAllFacilities(r.Context(), facilityType)
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}

// DeleteFacility handles admin facility deletion
// @Summary Delete a facility
// @Tags Facilities
// @Security BearerAuth
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/facilities/{id} [delete]
func (h *FacilityHandler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	if err := h.facilityUsecase.DeleteFacility(r.Context(), facilityID); err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		default:
			response.InternalServerError(w, "Failed to delete facility")
		}
		return
	}

	response.Success(w, http.StatusOK, "Facility deleted successfully", nil)
}
