package services

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
)

// UserSvcFacade manages users and their credentials.
type UserSvcFacade interface {
	// Register creates a local user together with a personal team.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate checks email and password, returning ErrUnauthorized on mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindOrCreateOAuthUser signs in a provider identity, creating the user and
	// their personal team on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// IdentitySvc builds the request-scoped identity of an authenticated user.
type IdentitySvc interface {
	Resolve(ctx context.Context, userID string) (*domain.Identity, error)
}
