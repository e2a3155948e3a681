package repositories

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read and aggregate operations on ledger entries.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns matching rows ordered by date then id, both
	// descending, starting after filter.After and capped at filter.Limit.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// SumAmounts adds up amount over the rows matching filter. Limit and
	// After are ignored. An empty set sums to zero.
	SumAmounts(ctx context.Context, filter domain.TransactionFilter) (int64, error)

	// SumAmountsByAccount groups the team's transaction sums by account id.
	SumAmountsByAccount(ctx context.Context, teamID string) (map[string]int64, error)
}

// TransactionWriter defines write operations on ledger entries.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteTransactionsByAccountInTx removes every transaction of an account
	// and reports how many rows went.
	DeleteTransactionsByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
