package repositories

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TeamReader defines read operations for teams and memberships
type TeamReader interface {
	FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	// ListTeamsForUser returns teams the user owns or is a member of.
	ListTeamsForUser(ctx context.Context, userID string) ([]domain.Team, error)
	ListOwnedTeamIDs(ctx context.Context, userID string) ([]string, error)
	ListMembershipsForUser(ctx context.Context, userID string) ([]domain.TeamMembership, error)
}

// TeamWriter defines write operations for teams and memberships
type TeamWriter interface {
	SaveTeamInTx(ctx context.Context, tx pgx.Tx, team domain.Team) error
	// AddMember inserts the membership or updates the role of an existing one.
	AddMember(ctx context.Context, membership domain.TeamMembership) error
}

type TeamRepositoryFacade interface {
	TeamReader
	TeamWriter
}

// TeamRepositoryWithTx extends TeamRepositoryFacade with transaction capabilities
type TeamRepositoryWithTx interface {
	TeamRepositoryFacade
	TransactionManager
}
