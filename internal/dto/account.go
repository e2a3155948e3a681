package dto

import (
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// StartBalance is in major units and may be negative.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required,max=255"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=checking savings credit-card cash other"`
	CurrencyCode string             `json:"currencyCode" binding:"required,len=3"`
	StartBalance *decimal.Decimal   `json:"startBalance" binding:"required" swaggertype:"string" example:"-12.34"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name         *string             `json:"name" binding:"omitempty,min=1,max=255"`
	AccountType  *domain.AccountType `json:"accountType" binding:"omitempty,oneof=checking savings credit-card cash other"`
	CurrencyCode *string             `json:"currencyCode" binding:"omitempty,len=3"`
	StartBalance *decimal.Decimal    `json:"startBalance" swaggertype:"string" example:"-12.34"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID             string             `json:"accountID"`
	TeamID                string             `json:"teamID"`
	Name                  string             `json:"name"`
	AccountType           domain.AccountType `json:"accountType"`
	DisplayType           string             `json:"displayType"`
	CurrencyCode          string             `json:"currencyCode"`
	StartBalance          int64              `json:"startBalance"`
	CurrentBalance        *int64             `json:"currentBalance,omitempty"`
	CurrentBalanceDisplay string             `json:"currentBalanceDisplay,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	CreatedBy             string             `json:"createdBy"`
	LastUpdatedAt         time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy         string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		TeamID:        acc.TeamID,
		Name:          acc.Name,
		AccountType:   acc.Type,
		DisplayType:   acc.DisplayType(),
		CurrencyCode:  acc.CurrencyCode,
		StartBalance:  acc.StartBalance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToAccountSummaryResponse adds the derived balance rendered with symbol.
func ToAccountSummaryResponse(summary *domain.AccountSummary, symbol string) AccountResponse {
	res := ToAccountResponse(&summary.Account)
	balance := summary.CurrentBalance
	res.CurrentBalance = &balance
	res.CurrentBalanceDisplay = money.ToDisplayAmount(balance, symbol)
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts summaries using the currency table for symbols.
func ToListAccountsResponse(summaries []domain.AccountSummary, currencies domain.CurrencyTable) ListAccountsResponse {
	res := make([]AccountResponse, len(summaries))
	for i := range summaries {
		res[i] = ToAccountSummaryResponse(&summaries[i], currencies.SymbolFor(summaries[i].CurrencyCode))
	}
	return ListAccountsResponse{Accounts: res}
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string `json:"accountID"`
	Balance   int64  `json:"balance"`
	Display   string `json:"display"`
	Formatted string `json:"formatted"`
}

func ToAccountBalanceResponse(accountID string, balance int64, symbol string) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID: accountID,
		Balance:   balance,
		Display:   money.ToDisplayAmount(balance, symbol),
		Formatted: money.ToFormattedAmount(balance, symbol),
	}
}
