package dto

import "time"

// Request DTOs

// LoginRequest carries the passwordless login pair: the issued credential
// and the re-typed display name used as identity confirmation.
type LoginRequest struct {
	Credential    string `json:"credential" validate:"required"`
	ConfirmedName string `json:"confirmedName" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

type UserResponse struct {
	Credential string    `json:"credential"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}
