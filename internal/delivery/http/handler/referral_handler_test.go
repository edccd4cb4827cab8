package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bhrms/internal/delivery/dto"
	"bhrms/internal/domain/entity"
	"bhrms/internal/usecase"
	"bhrms/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReferralUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error)
	updateFn func(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error)
	searchFn func(ctx context.Context, patientName string) (*dto.ReferralListResponse, error)
	allFn    func(ctx context.Context, status entity.ReferralStatus, priority entity.ReferralPriority) (*dto.ReferralListResponse, error)
}

func (s *stubReferralUsecase) CreateReferral(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubReferralUsecase) GetMyReferrals(ctx context.Context, status entity.ReferralStatus) (*dto.ReferralListResponse, error) {
	return &dto.ReferralListResponse{Referrals: []dto.ReferralResponse{}, Total: 0}, nil
}

func (s *stubReferralUsecase) GetAllReferrals(ctx context.Context, status entity.ReferralStatus, priority entity.ReferralPriority) (*dto.ReferralListResponse, error) {
	return s.allFn(ctx, status, priority)
}

func (s *stubReferralUsecase) SearchReferrals(ctx context.Context, patientName string) (*dto.ReferralListResponse, error) {
	return s.searchFn(ctx, patientName)
}

func (s *stubReferralUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error) {
	return s.updateFn(ctx, id, target)
}

func newReferralHandler(stub *stubReferralUsecase) *ReferralHandler {
	return NewReferralHandler(stub, validator.NewValidator())
}

func validCreateRequest() dto.CreateReferralRequest {
	age := 34
	return dto.CreateReferralRequest{
		PatientName:    "Maria Santos",
		PatientAge:     &age,
		PatientGender:  "female",
		ChiefComplaint: "Severe abdominal pain",
		FromFacility:   "Barangay Health Station 1",
		ToFacility:     "Provincial Hospital",
		Priority:       "urgent",
	}
}

func TestCreateReferralSuccess(t *testing.T) {
	stub := &stubReferralUsecase{
		createFn: func(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
			return &dto.ReferralResponse{
				ID:          uuid.New(),
				PatientName: req.PatientName,
				Status:      string(entity.ReferralStatusPending),
				Priority:    req.Priority,
			}, nil
		},
	}
	h := newReferralHandler(stub)

	rec := postJSON(t, h.CreateReferral, "/api/v1/referrals", validCreateRequest())

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
}

func TestCreateReferralSameFacility(t *testing.T) {
	stub := &stubReferralUsecase{
		createFn: func(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
			return nil, usecase.ErrSameFacility
		},
	}
	h := newReferralHandler(stub)

	req := validCreateRequest()
	req.ToFacility = req.FromFacility
	rec := postJSON(t, h.CreateReferral, "/api/v1/referrals", req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Origin and destination facilities must be different", resp.Message)
}

func TestCreateReferralZeroAgeAccepted(t *testing.T) {
	var got *dto.CreateReferralRequest
	stub := &stubReferralUsecase{
		createFn: func(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
			got = req
			return &dto.ReferralResponse{ID: uuid.New(), Status: "pending"}, nil
		},
	}
	h := newReferralHandler(stub)

	req := validCreateRequest()
	age := 0 // newborn
	req.PatientAge = &age
	rec := postJSON(t, h.CreateReferral, "/api/v1/referrals", req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got.PatientAge)
}

func TestCreateReferralMissingAge(t *testing.T) {
	stub := &stubReferralUsecase{
		createFn: func(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	}
	h := newReferralHandler(stub)

	rec := postJSON(t, h.CreateReferral, "/api/v1/referrals", map[string]string{
		"patientName":    "Maria Santos",
		"patientGender":  "female",
		"chiefComplaint": "Fever",
		"fromFacility":   "BHS 1",
		"toFacility":     "Hospital",
		"priority":       "routine",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReferralInvalidPriority(t *testing.T) {
	h := newReferralHandler(&stubReferralUsecase{
		createFn: func(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	})

	req := validCreateRequest()
	req.Priority = "critical"
	rec := postJSON(t, h.CreateReferral, "/api/v1/referrals", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func patchStatus(t *testing.T, h *ReferralHandler, id string, status string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(dto.UpdateReferralStatusRequest{Status: status})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/referrals/"+id+"/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)
	return rec
}

func TestUpdateStatusSuccess(t *testing.T) {
	id := uuid.New()
	stub := &stubReferralUsecase{
		updateFn: func(ctx context.Context, gotID uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, entity.ReferralStatusAccepted, target)
			return &dto.ReferralResponse{ID: gotID, Status: string(target)}, nil
		},
	}
	h := newReferralHandler(stub)

	rec := patchStatus(t, h, id.String(), "accepted")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "accepted", data["status"])
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	stub := &stubReferralUsecase{
		updateFn: func(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error) {
			return nil, usecase.ErrIllegalTransition
		},
	}
	h := newReferralHandler(stub)

	rec := patchStatus(t, h, uuid.New().String(), "completed")

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Status transition not allowed", resp.Message)
}

func TestUpdateStatusNotFound(t *testing.T) {
	stub := &stubReferralUsecase{
		updateFn: func(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error) {
			return nil, usecase.ErrReferralNotFound
		},
	}
	h := newReferralHandler(stub)

	rec := patchStatus(t, h, uuid.New().String(), "accepted")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusInvalidID(t *testing.T) {
	h := newReferralHandler(&stubReferralUsecase{})

	rec := patchStatus(t, h, "not-a-uuid", "accepted")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusUnknownTarget(t *testing.T) {
	h := newReferralHandler(&stubReferralUsecase{
		updateFn: func(ctx context.Context, id uuid.UUID, target entity.ReferralStatus) (*dto.ReferralResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	})

	rec := patchStatus(t, h, uuid.New().String(), "archived")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchReferralsRequiresName(t *testing.T) {
	h := newReferralHandler(&stubReferralUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/referrals/search", nil)
	rec := httptest.NewRecorder()
	h.SearchReferrals(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchReferralsPassesQuery(t *testing.T) {
	stub := &stubReferralUsecase{
		searchFn: func(ctx context.Context, patientName string) (*dto.ReferralListResponse, error) {
			assert.Equal(t, "santos", patientName)
			return &dto.ReferralListResponse{Referrals: []dto.ReferralResponse{}, Total: 0}, nil
		},
	}
	h := newReferralHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/referrals/search?patientName=santos", nil)
	rec := httptest.NewRecorder()
	h.SearchReferrals(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAllReferralsInvalidFilters(t *testing.T) {
	h := newReferralHandler(&stubReferralUsecase{
		allFn: func(ctx context.Context, status entity.ReferralStatus, priority entity.ReferralPriority) (*dto.ReferralListResponse, error) {
			t.Fatal("usecase must not be reached with invalid filters")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/referrals?status=rejected", nil)
	rec := httptest.NewRecorder()
	h.GetAllReferrals(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/referrals?priority=critical", nil)
	rec = httptest.NewRecorder()
	h.GetAllReferrals(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
