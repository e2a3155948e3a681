package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateCurrentTeam(ctx context.Context, userID, teamID string) error
	UpdateCurrentTeamInTx(ctx context.Context, tx pgx.Tx, userID, teamID string) error
	LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string) error

	// UpdateRefreshToken replaces any stored refresh token with tokenHash.
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
