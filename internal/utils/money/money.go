// Package money converts between integer minor units, the only form amounts
// are stored in, and the strings and decimals shown to people.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// ErrAmountOutOfRange is returned when an amount has no int64 minor-unit form.
var ErrAmountOutOfRange = errors.New("amount is out of range")

// ToDisplayAmount renders a signed amount such as "+$15.00" or "-$1,234.56".
// Zero is rendered with a plus sign.
func ToDisplayAmount(amountMinor int64, symbol string) string {
	sign := "+"
	if amountMinor < 0 {
		sign = "-"
	}
	return sign + ToFormattedAmount(amountMinor, symbol)
}

// ToFormattedAmount renders the unsigned magnitude, e.g. "$15.00".
func ToFormattedAmount(amountMinor int64, symbol string) string {
	mag := magnitude(amountMinor)
	return fmt.Sprintf("%s%s.%02d", symbol, printer.Sprintf("%d", mag/100), mag%100)
}

// DollarsToCents rounds value*100 half away from zero. It fails with
// ErrAmountOutOfRange instead of wrapping when the result exceeds int64.
func DollarsToCents(value decimal.Decimal) (int64, error) {
	cents := value.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, value.String())
	}
	return cents.IntPart(), nil
}

// CentsToDollars converts minor units to major units without loss.
func CentsToDollars(amountMinor int64) decimal.Decimal {
	return decimal.New(amountMinor, -2)
}

// CentsToFloat converts minor units to a float for reporting.
func CentsToFloat(amountMinor int64) float64 {
	f, _ := CentsToDollars(amountMinor).Float64()
	return f
}

func magnitude(amountMinor int64) uint64 {
	if amountMinor < 0 {
		return uint64(-(amountMinor + 1)) + 1
	}
	return uint64(amountMinor)
}
