package mapping

import (
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
)

func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: domain.NormalizeCurrencyCode(m.CurrencyCode),
		Symbol:       m.Symbol,
		Name:         m.Name,
	}
}

func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	return mapSlice(ms, ToDomainCurrency)
}
