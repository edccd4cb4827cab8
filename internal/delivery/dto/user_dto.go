package dto

// Request DTOs

type CreateUserRequest struct {
	Credential string `json:"credential" validate:"required"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=staff admin health_worker"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// LegacyAddUserResponse is the exact body shape of the pre-v1
// POST /api/admin/add-user route, kept for client compatibility.
type LegacyAddUserResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    *LegacyUserBody `json:"user"`
}

type LegacyUserBody struct {
	Credential string `json:"credential"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
}

// LegacyErrorResponse is the error body shape of the legacy add-user route.
type LegacyErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
