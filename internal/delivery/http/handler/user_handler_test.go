package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bhrms/internal/delivery/dto"
	"bhrms/internal/usecase"
	"bhrms/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	deleteFn func(ctx context.Context, credential string) error
}

func (s *stubUserUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{Users: []dto.UserResponse{}, Total: 0}, nil
}

func (s *stubUserUsecase) DeleteUser(ctx context.Context, credential string) error {
	return s.deleteFn(ctx, credential)
}

func newUserHandler(stub *stubUserUsecase) *UserHandler {
	return NewUserHandler(stub, validator.NewValidator())
}

func TestCreateUserConflict(t *testing.T) {
	stub := &stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrCredentialExists
		},
	}
	h := newUserHandler(stub)

	rec := postJSON(t, h.CreateUser, "/api/v1/admin/users", dto.CreateUserRequest{
		Credential: "staff123",
		FirstName:  "Jane",
		LastName:   "Doe",
		Role:       "staff",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "User with this credential already exists", resp.Message)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	})

	rec := postJSON(t, h.CreateUser, "/api/v1/admin/users", dto.CreateUserRequest{
		Credential: "x1",
		FirstName:  "Jane",
		LastName:   "Doe",
		Role:       "superadmin",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Legacy add-user route keeps the original flat body shapes.

func TestAddUserLegacySuccessShape(t *testing.T) {
	stub := &stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			return &dto.UserResponse{
				Credential: req.Credential,
				FirstName:  req.FirstName,
				LastName:   req.LastName,
				Role:       req.Role,
			}, nil
		},
	}
	h := newUserHandler(stub)

	rec := postJSON(t, h.AddUserLegacy, "/api/admin/add-user", dto.CreateUserRequest{
		Credential: "hw42",
		FirstName:  "Juan",
		LastName:   "dela Cruz",
		Role:       "health_worker",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LegacyAddUserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User Juan dela Cruz created successfully", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "hw42", resp.User.Credential)
	assert.Equal(t, "health_worker", resp.User.Role)
}

func TestAddUserLegacyMissingFields(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			t.Fatal("usecase must not be reached with missing fields")
			return nil, nil
		},
	})

	rec := postJSON(t, h.AddUserLegacy, "/api/admin/add-user", map[string]string{
		"credential": "hw42",
		"firstName":  "Juan",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.LegacyErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Missing required fields", resp.Error)
}

func TestAddUserLegacyMalformedBody(t *testing.T) {
	h := newUserHandler(&stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			t.Fatal("usecase must not be reached with an unparseable body")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/add-user", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.AddUserLegacy(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.LegacyErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Failed to create user", resp.Error)
	assert.NotEmpty(t, resp.Details)
}

func TestAddUserLegacyInvalidRole(t *testing.T) {
	stub := &stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrInvalidRole
		},
	}
	h := newUserHandler(stub)

	rec := postJSON(t, h.AddUserLegacy, "/api/admin/add-user", dto.CreateUserRequest{
		Credential: "hw42",
		FirstName:  "Juan",
		LastName:   "dela Cruz",
		Role:       "doctor",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.LegacyErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid role", resp.Error)
}

func TestAddUserLegacyDuplicateCredential(t *testing.T) {
	stub := &stubUserUsecase{
		createFn: func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrCredentialExists
		},
	}
	h := newUserHandler(stub)

	rec := postJSON(t, h.AddUserLegacy, "/api/admin/add-user", dto.CreateUserRequest{
		Credential: "staff123",
		FirstName:  "Jane",
		LastName:   "Doe",
		Role:       "staff",
	})

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp dto.LegacyErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User with this credential already exists", resp.Error)
}
