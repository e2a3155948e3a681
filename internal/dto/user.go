package dto

import (
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

// RegisterRequest creates a local user with a personal team.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the structure for login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the JWT access token and the refresh token that can
// renew it.
type LoginResponse struct {
	Token                 string    `json:"token"`
	ExpiresAt             time.Time `json:"expiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// RefreshTokenRequest trades a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ExchangeCodeRequest is the body of the Google code exchange endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse carries the consent URL and its CSRF state.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID        string              `json:"userID"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	AuthProvider  domain.AuthProvider `json:"authProvider"`
	CurrentTeamID *string             `json:"currentTeamID,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		AuthProvider:  u.AuthProvider,
		CurrentTeamID: u.CurrentTeamID,
		CreatedAt:     u.CreatedAt,
	}
}
