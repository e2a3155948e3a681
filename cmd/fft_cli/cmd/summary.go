package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/services"
	"github.com/SscSPs/family_finance_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/SscSPs/family_finance_tracker/pkg/database"
	"github.com/spf13/cobra"
)

var (
	summaryTeamID string
	summaryDate   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a team's monthly figures",
	Long: `Print expenses, income and end balance of a team for the calendar
month containing --date, each compared with the previous month.

Example:
  fft_cli summary --team 6f1c... --date 2024-03-20`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryTeamID, "team", "", "team id (required)")
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "reference date YYYY-MM-DD (default today)")
	_ = summaryCmd.MarkFlagRequired("team")
}

func runSummary(cmd *cobra.Command, args []string) error {
	date, err := parseReferenceDate(summaryDate, time.Now())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	ledger := services.NewTeamLedgerService(repos.AccountRepo, repos.TransactionRepo)

	summary, err := ledger.MonthlySummary(ctx, summaryTeamID, date)
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}
	return printSummary(cmd.OutOrStdout(), summary)
}

func parseReferenceDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now.UTC(), nil
	}
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
	}
	return date, nil
}

func printSummary(w io.Writer, s *domain.MonthlySummary) error {
	fmt.Fprintf(w, "Team %s, %s\n\n", s.TeamID, s.ReferenceDate.Format("January 2006"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tTHIS MONTH\tLAST MONTH\tCHANGE\t%\t")
	writeTrend(tw, "Expenses", s.Expenses)
	writeTrend(tw, "Income", s.Income)
	writeTrend(tw, "End balance", s.Balance)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal balance: %.2f\n", s.TotalBalanceInDollars)
	return err
}

func writeTrend(w io.Writer, label string, t domain.Trend) {
	pct := "n/a"
	if t.Percentage != nil {
		pct = fmt.Sprintf("%.1f", *t.Percentage)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
		label,
		money.ToDisplayAmount(t.Current, domain.DefaultCurrencySymbol),
		money.ToDisplayAmount(t.Previous, domain.DefaultCurrencySymbol),
		t.Formatted,
		pct,
	)
}
