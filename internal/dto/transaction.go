package dto

import (
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest logs a ledger entry in the current team.
// Amount is in major units: positive for income, negative for expenses.
type CreateTransactionRequest struct {
	AccountID  *string          `json:"accountID" binding:"omitempty,uuid"`
	CategoryID *string          `json:"categoryID" binding:"omitempty,uuid"`
	Date       string           `json:"date" binding:"required,datetime=2006-01-02"`
	Payee      string           `json:"payee" binding:"required,max=255"`
	Note       *string          `json:"note" binding:"omitempty,max=1000"`
	Amount     *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"-12.34"`
}

// AddAccountTransactionRequest logs an entry against the account in the URL.
// CreatedBy defaults to the caller.
type AddAccountTransactionRequest struct {
	CategoryID *string          `json:"categoryID" binding:"omitempty,uuid"`
	Date       string           `json:"date" binding:"required,datetime=2006-01-02"`
	Payee      string           `json:"payee" binding:"required,max=255"`
	Note       *string          `json:"note" binding:"omitempty,max=1000"`
	Amount     *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"-12.34"`
	CreatedBy  *string          `json:"createdBy" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest changes only the fields provided. An empty string
// for AccountID or CategoryID detaches the transaction.
type UpdateTransactionRequest struct {
	AccountID  *string          `json:"accountID" binding:"omitempty,uuid|len=0"`
	CategoryID *string          `json:"categoryID" binding:"omitempty,uuid|len=0"`
	Date       *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Payee      *string          `json:"payee" binding:"omitempty,min=1,max=255"`
	Note       *string          `json:"note" binding:"omitempty,max=1000"`
	Amount     *decimal.Decimal `json:"amount" swaggertype:"string" example:"-12.34"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Month is YYYY-MM.
type ListTransactionsParams struct {
	AccountID  *string `form:"accountID" binding:"omitempty,uuid"`
	CategoryID *string `form:"categoryID" binding:"omitempty,uuid"`
	Month      *string `form:"month" binding:"omitempty,datetime=2006-01"`
	Sign       string  `form:"sign" binding:"omitempty,oneof=positive negative"`
	Limit      int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken  string  `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string    `json:"transactionID"`
	TeamID        string    `json:"teamID"`
	AccountID     *string   `json:"accountID,omitempty"`
	CategoryID    *string   `json:"categoryID,omitempty"`
	Date          string    `json:"date"`
	Payee         string    `json:"payee"`
	Note          *string   `json:"note,omitempty"`
	Amount        int64     `json:"amount"`
	Display       string    `json:"display"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction, symbol string) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		TeamID:        txn.TeamID,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		Date:          txn.Date.Format(domain.DateLayout),
		Payee:         txn.Payee,
		Note:          txn.Note,
		Amount:        txn.Amount,
		Display:       money.ToDisplayAmount(txn.Amount, symbol),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToListTransactionsResponse renders each amount with the symbol returned by
// symbolFor for that transaction.
func ToListTransactionsResponse(page *domain.TransactionPage, symbolFor func(*domain.Transaction) string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(page.Transactions))
	for i := range page.Transactions {
		res[i] = ToTransactionResponse(&page.Transactions[i], symbolFor(&page.Transactions[i]))
	}
	return ListTransactionsResponse{Transactions: res, NextPageToken: page.NextPageToken}
}
