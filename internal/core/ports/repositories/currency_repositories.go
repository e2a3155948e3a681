package repositories

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

// CurrencyReader reads the seeded currency reference table.
type CurrencyReader interface {
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
