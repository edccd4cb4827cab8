package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bhrms/config"
	"bhrms/internal/delivery/dto"
	"bhrms/internal/usecase"
	"bhrms/pkg/jwt"
	"bhrms/pkg/response"
	"bhrms/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase lets each test pin the behavior it exercises.
type stubAuthUsecase struct {
	loginFn   func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	currentFn func(ctx context.Context, credential string) (*dto.UserResponse, error)
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrInvalidToken
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, credential string) (*dto.UserResponse, error) {
	return s.currentFn(ctx, credential)
}

func newAuthHandler(stub *stubAuthUsecase) *AuthHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthHandler(stub, validator.NewValidator(), jwtService)
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLoginSuccess(t *testing.T) {
	stub := &stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			assert.Equal(t, "staff123", req.Credential)
			assert.Equal(t, "Jane Doe", req.ConfirmedName)
			return &dto.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    900,
				User:         &dto.UserResponse{Credential: "staff123", FirstName: "Jane", LastName: "Doe", Role: "staff"},
			}, nil
		},
	}
	h := newAuthHandler(stub)

	rec := postJSON(t, h.Login, "/api/v1/auth/login", dto.LoginRequest{
		Credential:    "staff123",
		ConfirmedName: "Jane Doe",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Login successful", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "access", data["access_token"])
	assert.Equal(t, "refresh", data["refresh_token"])
}

func TestLoginUnknownCredential(t *testing.T) {
	stub := &stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrUserNotFound
		},
	}
	h := newAuthHandler(stub)

	rec := postJSON(t, h.Login, "/api/v1/auth/login", dto.LoginRequest{
		Credential:    "ghost",
		ConfirmedName: "No One",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credential number", resp.Message)
}

func TestLoginNameMismatch(t *testing.T) {
	stub := &stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrIdentityMismatch
		},
	}
	h := newAuthHandler(stub)

	rec := postJSON(t, h.Login, "/api/v1/auth/login", dto.LoginRequest{
		Credential:    "staff123",
		ConfirmedName: "Wrong Name",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Name does not match our records", resp.Message)
}

func TestLoginMissingFields(t *testing.T) {
	called := false
	stub := &stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			called = true
			return nil, nil
		},
	}
	h := newAuthHandler(stub)

	rec := postJSON(t, h.Login, "/api/v1/auth/login", map[string]string{"credential": "staff123"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "usecase must not be reached on validation failure")
}

func TestLoginMalformedBody(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
