package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMatchesName(t *testing.T) {
	u := &User{Credential: "staff123", FirstName: "Jane", LastName: "Doe", Role: RoleStaff}

	tests := []struct {
		name  string
		typed string
		want  bool
	}{
		{"exact match", "Jane Doe", true},
		{"case insensitive", "jane doe", true},
		{"mixed case", "JANE dOe", true},
		{"partial name", "Jane D", false},
		{"first name only", "Jane", false},
		{"reversed order", "Doe Jane", false},
		{"trailing space", "Jane Doe ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.MatchesName(tt.typed))
		})
	}
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Juan", LastName: "dela Cruz"}
	assert.Equal(t, "Juan dela Cruz", u.FullName())
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleStaff))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleHealthWorker))
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
}

func TestUserRoleChecks(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	staff := &User{Role: RoleStaff}
	healthWorker := &User{Role: RoleHealthWorker}

	assert.True(t, admin.IsAdmin())
	assert.False(t, staff.IsAdmin())

	assert.True(t, staff.CanCreateReferrals())
	assert.True(t, healthWorker.CanCreateReferrals())
	assert.False(t, admin.CanCreateReferrals())
}
