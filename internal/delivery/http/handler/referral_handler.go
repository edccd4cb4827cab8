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

type ReferralHandler struct {
	referralUsecase usecase.ReferralUsecase
	validator       *validator.CustomValidator
}

func NewReferralHandler(referralUsecase usecase.ReferralUsecase, validator *validator.CustomValidator) *ReferralHandler {
	return &ReferralHandler{
		referralUsecase: referralUsecase,
		validator:       validator,
	}
}

// CreateReferral handles referral creation by staff
// @Summary Create a referral
// @Description Create a patient referral; status starts as pending
// @Tags Referrals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReferralRequest true "Create Referral Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /referrals [post]
func (h *ReferralHandler) CreateReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.referralUsecase.CreateReferral(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSameFacility:
			response.Error(w, http.StatusBadRequest, "Origin and destination facilities must be different", nil)
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, "Account no longer exists")
		default:
			response.InternalServerError(w, "Failed to create referral")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Referral created successfully", referral)
}

// GetMyReferrals handles listing the caller's own referrals
// @Summary List my referrals
// @Tags Referrals
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /referrals/my [get]
func (h *ReferralHandler) GetMyReferrals(w http.ResponseWriter, r *http.Request) {
	status := entity.ReferralStatus(r.URL.Query().Get("status"))
	if status != "" && !entity.IsValidStatus(status) {
		response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		return
	}

	referrals, err := h.referralUsecase.GetMyReferrals(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Failed to get referrals")
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved successfully", referrals)
}

// GetAllReferrals backs the admin triage dashboard
// @Summary List all referrals
// @Tags Referrals
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Success 200 {object} response.Response
// @Router /admin/referrals [get]
func (h *ReferralHandler) GetAllReferrals(w http.ResponseWriter, r *http.Request) {
	status := entity.ReferralStatus(r.URL.Query().Get("status"))
	if status != "" && !entity.IsValidStatus(status) {
		response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		return
	}

	priority := entity.ReferralPriority(r.URL.Query().Get("priority"))
	if priority != "" && !entity.IsValidPriority(priority) {
		response.Error(w, http.StatusBadRequest, "Invalid priority filter", nil)
		return
	}

	referrals, err := h.referralUsecase.GetAllReferrals(r.Context(), status, priority)
	if err != nil {
		response.InternalServerError(w, "Failed to get referrals")
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved successfully", referrals)
}

// SearchReferrals handles patient name search
// @Summary Search referrals by patient name
// @Tags Referrals
// @Security BearerAuth
// @Produce json
// @Param patientName query string true "Patient name substring"
// @Success 200 {object} response.Response
// @Router /referrals/search [get]
func (h *ReferralHandler) SearchReferrals(w http.ResponseWriter, r *http.Request) {
	patientName := r.URL.Query().Get("patientName")
	if patientName == "" {
		response.Error(w, http.StatusBadRequest, "patientName query parameter is required", nil)
		return
	}

	referrals, err := h.referralUsecase.SearchReferrals(r.Context(), patientName)
	if err != nil {
		response.InternalServerError(w, "Failed to search referrals")
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved successfully", referrals)
}

// UpdateStatus handles admin status transitions
// @Summary Transition a referral's status
// @Description Apply a table-driven status transition chosen by the admin
// @Tags Referrals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Referral ID"
// @Param request body dto.UpdateReferralStatusRequest true "Target Status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/referrals/{id}/status [patch]
func (h *ReferralHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	referralID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	var req dto.UpdateReferralStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.referralUsecase.UpdateStatus(r.Context(), referralID, entity.ReferralStatus(req.Status))
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		case usecase.ErrIllegalTransition:
			response.Conflict(w, "Status transition not allowed")
		default:
			response.InternalServerError(w, "Failed to update referral")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referral status updated successfully", referral)
}
