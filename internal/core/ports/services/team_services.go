package services

import (
	"context"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
)

// TeamSvcFacade manages teams and memberships.
type TeamSvcFacade interface {
	CreateTeam(ctx context.Context, identity *domain.Identity, req dto.CreateTeamRequest) (*domain.Team, error)
	// CreatePersonalTeam creates the owner's personal team and selects it.
	CreatePersonalTeam(ctx context.Context, user *domain.User) (*domain.Team, error)
	ListTeams(ctx context.Context, identity *domain.Identity) ([]domain.Team, error)
	AddMember(ctx context.Context, identity *domain.Identity, teamID string, req dto.AddTeamMemberRequest) (*domain.TeamMembership, error)
	SwitchCurrentTeam(ctx context.Context, identity *domain.Identity, teamID string) error
}

// TeamLedgerSvc aggregates a team's accounts and transactions. Every month
// based figure is computed over the calendar month containing date.
type TeamLedgerSvc interface {
	MonthExpenses(ctx context.Context, teamID string, date time.Time) (int64, error)
	MonthIncome(ctx context.Context, teamID string, date time.Time) (int64, error)
	MonthEndBalance(ctx context.Context, teamID string, date time.Time) (int64, error)

	ExpensesChange(ctx context.Context, teamID string, date time.Time) (int64, error)
	IncomeChange(ctx context.Context, teamID string, date time.Time) (int64, error)
	BalanceChange(ctx context.Context, teamID string, date time.Time) (int64, error)

	ExpensesChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error)
	IncomeChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error)
	BalanceChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error)

	ExpensesChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error)
	IncomeChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error)
	BalanceChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error)

	ExpensesChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error)
	IncomeChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error)
	BalanceChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error)

	TotalBalanceInDollars(ctx context.Context, teamID string) (float64, error)

	// MonthlySummary computes every figure above for one team in one pass.
	MonthlySummary(ctx context.Context, teamID string, date time.Time) (*domain.MonthlySummary, error)

	// Dashboard is MonthlySummary for the identity's current team.
	Dashboard(ctx context.Context, identity *domain.Identity, date time.Time) (*domain.MonthlySummary, error)
}
