package domain

import "time"

// Polarity classifies a change by the sign of its raw delta.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// MonthFigures are the three per-month aggregates of a team.
type MonthFigures struct {
	Expenses   int64 `json:"expenses"`
	Income     int64 `json:"income"`
	EndBalance int64 `json:"endBalance"`
}

// Trend compares a metric against the previous calendar month.
// Percentage is nil when the previous value is zero.
type Trend struct {
	Current    int64    `json:"current"`
	Previous   int64    `json:"previous"`
	Change     int64    `json:"change"`
	Percentage *float64 `json:"percentage"`
	Formatted  string   `json:"formatted"`
	Polarity   Polarity `json:"polarity"`
}

// MonthlySummary is everything the dashboard shows for one team and month.
type MonthlySummary struct {
	TeamID                string    `json:"teamID"`
	ReferenceDate         time.Time `json:"referenceDate"`
	Expenses              Trend     `json:"expenses"`
	Income                Trend     `json:"income"`
	Balance               Trend     `json:"balance"`
	TotalBalanceInDollars float64   `json:"totalBalanceInDollars"`
}
