package services

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
)

type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, identity *domain.Identity, transactionID string) (*domain.Transaction, error)
	// ListTransactions pages through the current team's transactions, newest first.
	ListTransactions(ctx context.Context, identity *domain.Identity, params dto.ListTransactionsParams) (*domain.TransactionPage, error)
	// ExportTransactions returns every matching transaction, newest first,
	// ignoring the page limit and token.
	ExportTransactions(ctx context.Context, identity *domain.Identity, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, identity *domain.Identity, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, identity *domain.Identity, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, identity *domain.Identity, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
