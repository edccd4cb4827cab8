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

type HotlineHandler struct {
	hotlineUsecase usecase.HotlineUsecase
	validator      *validator.CustomValidator
}

func NewHotlineHandler(hotlineUsecase usecase.HotlineUsecase, validator *validator.CustomValidator) *HotlineHandler {
	return &HotlineHandler{
		hotlineUsecase: hotlineUsecase,
		validator:      validator,
	}
}

// CreateHotline handles admin hotline creation
// @Summary Create a hotline
// @Tags Hotlines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHotlineRequest true "Create Hotline Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/hotlines [post]
func (h *HotlineHandler) CreateHotline(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHotlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hotline, err := h.hotlineUsecase.CreateHotline(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create hotline")
		return
	}

	response.Success(w, http.StatusCreated, "Hotline created successfully", hotline)
}

// GetAllHotlines handles listing hotlines
// @Summary List hotlines
// @Tags Hotlines
// @Security BearerAuth
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Response
// @Router /hotlines [get]
func (h *HotlineHandler) GetAllHotlines(w http.ResponseWriter, r *http.Request) {
	category := entity.HotlineCategory(r.URL.Query().Get("category"))
	if category != "" && !entity.IsValidHotlineCategory(category) {
		response.Error(w, http.StatusBadRequest, "Invalid category filter", nil)
		return
	}

	hotlines, err := h.hotlineUsecase.GetAllHotlines(r.Context(), category)
	if err != nil {
		response.InternalServerError(w, "Failed to get hotlines")
		return
	}

	response.Success(w, http.StatusOK, "Hotlines retrieved successfully", hotlines)
}

// DeleteHotline handles admin hotline deletion
// @Summary Delete a hotline
// @Tags Hotlines
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hotline ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/hotlines/{id} [delete]
func (h *HotlineHandler) DeleteHotline(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotlineID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hotline ID", nil)
		return
	}

	if err := h.hotlineUsecase.DeleteHotline(r.Context(), hotlineID); err != nil {
		switch err {
		case usecase.ErrHotlineNotFound:
			response.NotFound(w, "Hotline not found")
		default:
			response.InternalServerError(w, "Failed to delete hotline")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hotline deleted successfully", nil)
}
