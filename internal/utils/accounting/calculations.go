// Package accounting holds the calendar and trend arithmetic behind the
// team dashboard.
package accounting

import (
	"math"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

// StartOfMonth returns the first day of date's calendar month at midnight UTC.
func StartOfMonth(date time.Time) time.Time {
	y, m, _ := date.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of date's month at midnight UTC.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// MonthBounds returns the inclusive first and last day of date's month.
func MonthBounds(date time.Time) (time.Time, time.Time) {
	return StartOfMonth(date), EndOfMonth(date)
}

// PreviousMonth returns a date inside the calendar month before date's month.
// Anchoring on the first of the month keeps March 31 from landing in March.
func PreviousMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, -1, 0)
}

// ChangePercentage is change / |previous| * 100, or nil when previous is 0.
func ChangePercentage(current, previous int64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := float64(current-previous) / math.Abs(float64(previous)) * 100
	return &pct
}

// PolarityOf classifies a delta purely by its sign; zero is positive.
func PolarityOf(change int64) domain.Polarity {
	if change >= 0 {
		return domain.PolarityPositive
	}
	return domain.PolarityNegative
}
