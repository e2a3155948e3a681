package domain

import "strings"

// DefaultCurrencySymbol is used when a currency code has no reference entry.
const DefaultCurrencySymbol = "$"

// Currency is read-only reference data.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // lower-case, e.g. "usd"
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// CurrencyTable indexes currencies by lower-case code.
type CurrencyTable map[string]Currency

// NewCurrencyTable builds a lookup table from a currency list.
func NewCurrencyTable(currencies []Currency) CurrencyTable {
	table := make(CurrencyTable, len(currencies))
	for _, c := range currencies {
		table[NormalizeCurrencyCode(c.CurrencyCode)] = c
	}
	return table
}

// SymbolFor looks code up case-insensitively and falls back to "$".
func (t CurrencyTable) SymbolFor(code string) string {
	if c, ok := t[NormalizeCurrencyCode(code)]; ok && c.Symbol != "" {
		return c.Symbol
	}
	return DefaultCurrencySymbol
}

// NormalizeCurrencyCode returns the canonical stored form of a code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
