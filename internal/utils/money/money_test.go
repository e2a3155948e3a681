package money_test

import (
	"math"
	"testing"

	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplayAmount(t *testing.T) {
	tests := []struct {
		amount int64
		symbol string
		want   string
	}{
		{1500, "$", "+$15.00"},
		{-2500, "$", "-$25.00"},
		{0, "$", "+$0.00"},
		{5, "€", "+€0.05"},
		{-123456, "$", "-$1,234.56"},
		{100000000, "£", "+£1,000,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.ToDisplayAmount(tt.amount, tt.symbol))
	}
}

func TestToFormattedAmount(t *testing.T) {
	assert.Equal(t, "$15.00", money.ToFormattedAmount(1500, "$"))
	assert.Equal(t, "$25.00", money.ToFormattedAmount(-2500, "$"))
	assert.Equal(t, "$92,233,720,368,547,758.08", money.ToFormattedAmount(math.MinInt64, "$"))
}

func TestDollarsToCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1234.56", 123456},
		{"-500.00", -50000},
		{"99.99", 9999},
		{"0.005", 1},
		{"-0.005", -1},
		{"10.004", 1000},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := money.DollarsToCents(decimal.RequireFromString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDollarsToCents_OutOfRange(t *testing.T) {
	for _, in := range []string{"1e30", "-1e30", "92233720368547758.08", "-92233720368547758.09"} {
		t.Run(in, func(t *testing.T) {
			_, err := money.DollarsToCents(decimal.RequireFromString(in))
			assert.ErrorIs(t, err, money.ErrAmountOutOfRange)
		})
	}

	got, err := money.DollarsToCents(decimal.RequireFromString("92233720368547758.07"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	got, err = money.DollarsToCents(decimal.RequireFromString("-92233720368547758.08"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)
}

func TestCentsToDollars(t *testing.T) {
	assert.True(t, decimal.RequireFromString("-12.34").Equal(money.CentsToDollars(-1234)))
	assert.Equal(t, 1234.56, money.CentsToFloat(123456))
}
