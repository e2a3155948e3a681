package dto

import "github.com/SscSPs/family_finance_tracker/internal/core/domain"

// DashboardParams selects the reference date; today when omitted.
type DashboardParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// DashboardResponse wraps the monthly summary of the current team.
type DashboardResponse struct {
	Date                  string       `json:"date"`
	TeamID                string       `json:"teamID"`
	Expenses              domain.Trend `json:"expenses"`
	Income                domain.Trend `json:"income"`
	Balance               domain.Trend `json:"balance"`
	TotalBalanceInDollars float64      `json:"totalBalanceInDollars"`
}

func ToDashboardResponse(s *domain.MonthlySummary) DashboardResponse {
	return DashboardResponse{
		Date:                  s.ReferenceDate.Format(domain.DateLayout),
		TeamID:                s.TeamID,
		Expenses:              s.Expenses,
		Income:                s.Income,
		Balance:               s.Balance,
		TotalBalanceInDollars: s.TotalBalanceInDollars,
	}
}
