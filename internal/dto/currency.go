package dto

import "github.com/SscSPs/family_finance_tracker/internal/core/domain"

type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = CurrencyResponse{CurrencyCode: c.CurrencyCode, Symbol: c.Symbol, Name: c.Name}
	}
	return res
}
