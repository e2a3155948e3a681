package services

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

// CurrencySvcFacade exposes the read-only currency reference table.
type CurrencySvcFacade interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	// CurrencyTable indexes all currencies for symbol lookup.
	CurrencyTable(ctx context.Context) (domain.CurrencyTable, error)
	// SymbolFor falls back to "$" for unknown codes.
	SymbolFor(ctx context.Context, currencyCode string) string
	// Exists reports whether a code is present in the reference table.
	Exists(ctx context.Context, currencyCode string) (bool, error)
}
