package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/SscSPs/family_finance_tracker/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
	exportPageSize  = 500
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryReader
}

// NewTransactionService creates the service for team level ledger entries.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) loadTransaction(ctx context.Context, identity *domain.Identity, transactionID string, ability policy.Ability) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	if err := policy.Transactions.Authorize(ability, identity, txn); err != nil {
		s.LogDebug(ctx, "Transaction access denied",
			slog.String("transaction_id", transactionID),
			slog.String("ability", string(ability)))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, identity *domain.Identity, transactionID string) (*domain.Transaction, error) {
	return s.loadTransaction(ctx, identity, transactionID, policy.AbilityView)
}

func (s *transactionService) ListTransactions(ctx context.Context, identity *domain.Identity, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	filter, err := filterFromParams(teamID, params)
	if err != nil {
		return nil, err
	}
	page, err := listPage(ctx, s.txnRepo, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("team_id", teamID))
		return nil, err
	}
	return page, nil
}

func (s *transactionService) ExportTransactions(ctx context.Context, identity *domain.Identity, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	params.NextToken = ""
	filter, err := filterFromParams(teamID, params)
	if err != nil {
		return nil, err
	}
	filter.Limit = exportPageSize

	all := make([]domain.Transaction, 0, exportPageSize)
	for {
		page, err := listPage(ctx, s.txnRepo, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to export transactions", slog.String("team_id", teamID))
			return nil, err
		}
		all = append(all, page.Transactions...)
		if page.NextPageToken == "" {
			break
		}
		last := page.Transactions[len(page.Transactions)-1]
		filter.After = &domain.TransactionCursor{Date: last.Date, TransactionID: last.TransactionID}
	}

	s.LogInfo(ctx, "Transactions exported",
		slog.String("team_id", teamID),
		slog.Int("count", len(all)))
	return all, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, identity *domain.Identity, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := policy.Transactions.AuthorizeCreate(identity); err != nil {
		return nil, err
	}

	txn, errs := buildTransaction(teamID, identity.UserID, transactionInput{
		AccountID:  req.AccountID,
		CategoryID: req.CategoryID,
		Date:       req.Date,
		Payee:      req.Payee,
		Note:       req.Note,
		Amount:     req.Amount,
	}, time.Now().UTC())
	if err := checkAccount(ctx, s.accountRepo, teamID, txn.AccountID, errs); err != nil {
		s.LogError(ctx, err, "Failed to check account")
		return nil, err
	}
	if err := checkCategory(ctx, s.categoryRepo, teamID, txn.CategoryID, errs); err != nil {
		s.LogError(ctx, err, "Failed to check category")
		return nil, err
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, identity *domain.Identity, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.loadTransaction(ctx, identity, transactionID, policy.AbilityUpdate)
	if err != nil {
		return nil, err
	}

	errs := apperrors.FieldErrors{}
	if req.AccountID != nil {
		accountID := normalizeOptionalID(req.AccountID)
		if err := checkAccount(ctx, s.accountRepo, txn.TeamID, accountID, errs); err != nil {
			return nil, err
		}
		txn.AccountID = accountID
	}
	if req.CategoryID != nil {
		categoryID := normalizeOptionalID(req.CategoryID)
		if err := checkCategory(ctx, s.categoryRepo, txn.TeamID, categoryID, errs); err != nil {
			return nil, err
		}
		txn.CategoryID = categoryID
	}
	if req.Date != nil {
		if date, ok := parseDate(*req.Date); ok {
			txn.Date = date
		} else {
			errs.Add("date", "must be a date formatted YYYY-MM-DD")
		}
	}
	if req.Payee != nil {
		payee := strings.TrimSpace(*req.Payee)
		if payee == "" {
			errs.Add("payee", "must not be blank")
		}
		txn.Payee = payee
	}
	if req.Note != nil {
		txn.Note = normalizeNote(req.Note)
	}
	if req.Amount != nil {
		if cents, err := money.DollarsToCents(*req.Amount); err != nil {
			errs.Add("amount", amountRangeMessage)
		} else {
			txn.Amount = cents
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = identity.UserID
	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, identity *domain.Identity, transactionID string) error {
	if _, err := s.loadTransaction(ctx, identity, transactionID, policy.AbilityDelete); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	return nil
}

// filterFromParams turns list query parameters into a repository filter
// scoped to teamID.
func filterFromParams(teamID string, params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	errs := apperrors.FieldErrors{}
	filter := domain.TransactionFilter{
		TeamID:     teamID,
		AccountID:  normalizeOptionalID(params.AccountID),
		CategoryID: normalizeOptionalID(params.CategoryID),
		Sign:       domain.AmountSign(params.Sign),
		Limit:      clampLimit(params.Limit, maxPageSize),
	}

	switch filter.Sign {
	case domain.SignAny, domain.SignPositive, domain.SignNegative:
	default:
		errs.Add("sign", "must be positive or negative")
	}

	if params.Month != nil && strings.TrimSpace(*params.Month) != "" {
		month, err := time.Parse("2006-01", strings.TrimSpace(*params.Month))
		if err != nil {
			errs.Add("month", "must be formatted YYYY-MM")
		} else {
			from, to := accounting.MonthBounds(month)
			filter.From, filter.To = &from, &to
		}
	}

	cursor, err := pagination.DecodeTransactionCursor(params.NextToken)
	if err != nil {
		errs.Add("nextToken", "is not a valid page token")
	}
	filter.After = cursor

	return filter, errs.OrNil()
}

// listPage fetches one page and sets the token when more rows follow.
func listPage(ctx context.Context, repo portsrepo.TransactionReader, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	limit := clampLimit(filter.Limit, exportPageSize)
	filter.Limit = limit + 1

	rows, err := repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &domain.TransactionPage{Transactions: rows}
	if page.Transactions == nil {
		page.Transactions = []domain.Transaction{}
	}
	if len(rows) > limit {
		page.Transactions = rows[:limit]
		last := rows[limit-1]
		page.NextPageToken = pagination.EncodeTransactionCursor(domain.TransactionCursor{
			Date:          last.Date,
			TransactionID: last.TransactionID,
		})
	}
	return page, nil
}

func clampLimit(limit, upper int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > upper:
		return upper
	}
	return limit
}
