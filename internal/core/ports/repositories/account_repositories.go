package repositories

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByTeam retrieves every account of a team ordered by name.
	ListAccountsByTeam(ctx context.Context, teamID string) ([]domain.Account, error)

	// SumStartBalances adds up the start balance of every account in a team.
	SumStartBalances(ctx context.Context, teamID string) (int64, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccountInTx removes the account row. Its transactions must
	// already be gone inside the same tx.
	DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
