package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
)

// teamLedgerService derives monthly figures from stored accounts and
// transactions. Nothing here is cached.
type teamLedgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
}

func NewTeamLedgerService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader) portssvc.TeamLedgerSvc {
	return &teamLedgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.TeamLedgerSvc = (*teamLedgerService)(nil)

type monthMetric func(ctx context.Context, teamID string, date time.Time) (int64, error)

func (s *teamLedgerService) monthSum(ctx context.Context, teamID string, date time.Time, sign domain.AmountSign) (int64, error) {
	from, to := accounting.MonthBounds(date)
	sum, err := s.txnRepo.SumAmounts(ctx, domain.TransactionFilter{
		TeamID: teamID,
		From:   &from,
		To:     &to,
		Sign:   sign,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to sum month transactions",
			slog.String("team_id", teamID),
			slog.String("month", from.Format("2006-01")),
			slog.String("sign", string(sign)))
		return 0, err
	}
	return sum, nil
}

func (s *teamLedgerService) MonthExpenses(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return s.monthSum(ctx, teamID, date, domain.SignNegative)
}

func (s *teamLedgerService) MonthIncome(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return s.monthSum(ctx, teamID, date, domain.SignPositive)
}

func (s *teamLedgerService) MonthEndBalance(ctx context.Context, teamID string, date time.Time) (int64, error) {
	starts, err := s.startBalances(ctx, teamID)
	if err != nil {
		return 0, err
	}
	return s.endBalance(ctx, teamID, date, starts)
}

// endBalance adds every transaction dated on or before the month end to the
// given start balance total.
func (s *teamLedgerService) endBalance(ctx context.Context, teamID string, date time.Time, starts int64) (int64, error) {
	end := accounting.EndOfMonth(date)
	sum, err := s.txnRepo.SumAmounts(ctx, domain.TransactionFilter{TeamID: teamID, To: &end})
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transactions to month end",
			slog.String("team_id", teamID),
			slog.String("month_end", end.Format(domain.DateLayout)))
		return 0, err
	}
	return starts + sum, nil
}

func (s *teamLedgerService) startBalances(ctx context.Context, teamID string) (int64, error) {
	starts, err := s.accountRepo.SumStartBalances(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum start balances", slog.String("team_id", teamID))
		return 0, err
	}
	return starts, nil
}

// compare evaluates metric for the month of date and the month before it.
func (s *teamLedgerService) compare(ctx context.Context, teamID string, date time.Time, metric monthMetric) (current, previous int64, err error) {
	current, err = metric(ctx, teamID, date)
	if err != nil {
		return 0, 0, err
	}
	previous, err = metric(ctx, teamID, accounting.PreviousMonth(date))
	if err != nil {
		return 0, 0, err
	}
	return current, previous, nil
}

func (s *teamLedgerService) change(ctx context.Context, teamID string, date time.Time, metric monthMetric) (int64, error) {
	current, previous, err := s.compare(ctx, teamID, date, metric)
	if err != nil {
		return 0, err
	}
	return current - previous, nil
}

func (s *teamLedgerService) percentage(ctx context.Context, teamID string, date time.Time, metric monthMetric) (*float64, error) {
	current, previous, err := s.compare(ctx, teamID, date, metric)
	if err != nil {
		return nil, err
	}
	return accounting.ChangePercentage(current, previous), nil
}

func (s *teamLedgerService) formatted(ctx context.Context, teamID string, date time.Time, metric monthMetric) (string, error) {
	change, err := s.change(ctx, teamID, date, metric)
	if err != nil {
		return "", err
	}
	return money.ToDisplayAmount(change, domain.DefaultCurrencySymbol), nil
}

func (s *teamLedgerService) color(ctx context.Context, teamID string, date time.Time, metric monthMetric) (domain.Polarity, error) {
	change, err := s.change(ctx, teamID, date, metric)
	if err != nil {
		return "", err
	}
	return accounting.PolarityOf(change), nil
}

func (s *teamLedgerService) ExpensesChange(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return s.change(ctx, teamID, date, s.MonthExpenses)
}

func (s *teamLedgerService) IncomeChange(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return s.change(ctx, teamID, date, s.MonthIncome)
}

func (s *teamLedgerService) BalanceChange(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return s.change(ctx, teamID, date, s.MonthEndBalance)
}

func (s *teamLedgerService) ExpensesChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error) {
	return s.percentage(ctx, teamID, date, s.MonthExpenses)
}

func (s *teamLedgerService) IncomeChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error) {
	return s.percentage(ctx, teamID, date, s.MonthIncome)
}

func (s *teamLedgerService) BalanceChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error) {
	return s.percentage(ctx, teamID, date, s.MonthEndBalance)
}

func (s *teamLedgerService) ExpensesChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error) {
	return s.formatted(ctx, teamID, date, s.MonthExpenses)
}

func (s *teamLedgerService) IncomeChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error) {
	return s.formatted(ctx, teamID, date, s.MonthIncome)
}

func (s *teamLedgerService) BalanceChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error) {
	return s.formatted(ctx, teamID, date, s.MonthEndBalance)
}

func (s *teamLedgerService) ExpensesChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error) {
	return s.color(ctx, teamID, date, s.MonthExpenses)
}

func (s *teamLedgerService) IncomeChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error) {
	return s.color(ctx, teamID, date, s.MonthIncome)
}

func (s *teamLedgerService) BalanceChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error) {
	return s.color(ctx, teamID, date, s.MonthEndBalance)
}

// TotalBalanceInDollars is every start balance plus every transaction of the
// team regardless of date, converted from cents.
func (s *teamLedgerService) TotalBalanceInDollars(ctx context.Context, teamID string) (float64, error) {
	starts, err := s.startBalances(ctx, teamID)
	if err != nil {
		return 0, err
	}
	sum, err := s.txnRepo.SumAmounts(ctx, domain.TransactionFilter{TeamID: teamID})
	if err != nil {
		s.LogError(ctx, err, "Failed to sum team transactions", slog.String("team_id", teamID))
		return 0, err
	}
	return money.CentsToFloat(starts + sum), nil
}

func (s *teamLedgerService) figures(ctx context.Context, teamID string, date time.Time, starts int64) (domain.MonthFigures, error) {
	var figures domain.MonthFigures
	var err error
	if figures.Expenses, err = s.MonthExpenses(ctx, teamID, date); err != nil {
		return figures, err
	}
	if figures.Income, err = s.MonthIncome(ctx, teamID, date); err != nil {
		return figures, err
	}
	if figures.EndBalance, err = s.endBalance(ctx, teamID, date, starts); err != nil {
		return figures, err
	}
	return figures, nil
}

func (s *teamLedgerService) MonthlySummary(ctx context.Context, teamID string, date time.Time) (*domain.MonthlySummary, error) {
	starts, err := s.startBalances(ctx, teamID)
	if err != nil {
		return nil, err
	}
	current, err := s.figures(ctx, teamID, date, starts)
	if err != nil {
		return nil, err
	}
	previous, err := s.figures(ctx, teamID, accounting.PreviousMonth(date), starts)
	if err != nil {
		return nil, err
	}
	total, err := s.TotalBalanceInDollars(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlySummary{
		TeamID:                teamID,
		ReferenceDate:         date,
		Expenses:              newTrend(current.Expenses, previous.Expenses),
		Income:                newTrend(current.Income, previous.Income),
		Balance:               newTrend(current.EndBalance, previous.EndBalance),
		TotalBalanceInDollars: total,
	}, nil
}

func (s *teamLedgerService) Dashboard(ctx context.Context, identity *domain.Identity, date time.Time) (*domain.MonthlySummary, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := policy.Teams.Authorize(policy.AbilityView, identity, &domain.Team{TeamID: teamID}); err != nil {
		return nil, err
	}
	return s.MonthlySummary(ctx, teamID, date)
}

func newTrend(current, previous int64) domain.Trend {
	change := current - previous
	return domain.Trend{
		Current:    current,
		Previous:   previous,
		Change:     change,
		Percentage: accounting.ChangePercentage(current, previous),
		Formatted:  money.ToDisplayAmount(change, domain.DefaultCurrencySymbol),
		Polarity:   accounting.PolarityOf(change),
	}
}
