package services

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account the identity may view.
	GetAccount(ctx context.Context, identity *domain.Identity, accountID string) (*domain.Account, error)

	// ListAccounts lists the current team's accounts with derived balances.
	ListAccounts(ctx context.Context, identity *domain.Identity) ([]domain.AccountSummary, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, identity *domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, identity *domain.Identity, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes the account and all of its transactions atomically.
	DeleteAccount(ctx context.Context, identity *domain.Identity, accountID string) error
}

// AccountLedgerSvc covers the balance and posting operations of an account.
type AccountLedgerSvc interface {
	// CurrentBalance is start balance plus the sum of the account's
	// transactions, recomputed on every call.
	CurrentBalance(ctx context.Context, identity *domain.Identity, accountID string) (int64, error)

	// AddTransaction records an entry against the account, stamped with the
	// account's team.
	AddTransaction(ctx context.Context, identity *domain.Identity, accountID string, req dto.AddAccountTransactionRequest) (*domain.Transaction, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountLedgerSvc
}
