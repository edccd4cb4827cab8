package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bhrms/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), CredentialKey, "user1")
	ctx = context.WithValue(ctx, RoleKey, role)
	return req.WithContext(ctx)
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"admin allowed", entity.RoleAdmin, http.StatusOK},
		{"staff forbidden", entity.RoleStaff, http.StatusForbidden},
		{"health worker forbidden", entity.RoleHealthWorker, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, called := okHandler()
			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, requestWithRole(tt.role))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, *called)
		})
	}
}

func TestRequireStaff(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"staff allowed", entity.RoleStaff, http.StatusOK},
		{"health worker allowed", entity.RoleHealthWorker, http.StatusOK},
		{"admin forbidden", entity.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, called := okHandler()
			rec := httptest.NewRecorder()
			RequireStaff(next).ServeHTTP(rec, requestWithRole(tt.role))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, *called)
		})
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	next, called := okHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestContextAccessors(t *testing.T) {
	req := requestWithRole(entity.RoleStaff)

	credential, ok := GetCredentialFromContext(req.Context())
	assert.True(t, ok)
	assert.Equal(t, "user1", credential)

	role, ok := GetRoleFromContext(req.Context())
	assert.True(t, ok)
	assert.Equal(t, entity.RoleStaff, role)

	_, ok = GetTokenIDFromContext(req.Context())
	assert.False(t, ok)
}
