package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryWithTx
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	currencySvc  portssvc.CurrencySvcFacade
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCurrencyService enables currency code validation against the reference table
func WithCurrencyService(svc portssvc.CurrencySvcFacade) AccountServiceOption {
	return func(s *accountService) {
		s.currencySvc = svc
	}
}

// WithCategoryReader enables category checks on posted transactions
func WithCategoryReader(repo portsrepo.CategoryReader) AccountServiceOption {
	return func(s *accountService) {
		s.categoryRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// loadAccount fetches the account and checks ability against it.
func (s *accountService) loadAccount(ctx context.Context, identity *domain.Identity, accountID string, ability policy.Ability) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	if err := policy.Accounts.Authorize(ability, identity, account); err != nil {
		s.LogDebug(ctx, "Account access denied",
			slog.String("account_id", accountID),
			slog.String("ability", string(ability)))
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, identity *domain.Identity, accountID string) (*domain.Account, error) {
	return s.loadAccount(ctx, identity, accountID, policy.AbilityView)
}

func (s *accountService) ListAccounts(ctx context.Context, identity *domain.Identity) ([]domain.AccountSummary, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !policy.Accounts.CanViewAny(identity) {
		return nil, fmt.Errorf("%w: listing accounts is not allowed", apperrors.ErrForbidden)
	}

	accounts, err := s.accountRepo.ListAccountsByTeam(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("team_id", teamID))
		return nil, err
	}
	sums, err := s.txnRepo.SumAmountsByAccount(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transactions by account", slog.String("team_id", teamID))
		return nil, err
	}

	summaries := make([]domain.AccountSummary, len(accounts))
	for i := range accounts {
		summaries[i] = domain.AccountSummary{
			Account:        accounts[i],
			CurrentBalance: accounts[i].CurrentBalance(sums[accounts[i].AccountID]),
		}
	}
	return summaries, nil
}

func (s *accountService) CreateAccount(ctx context.Context, identity *domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error) {
	teamID, err := s.CurrentTeam(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := policy.Accounts.AuthorizeCreate(identity); err != nil {
		s.LogDebug(ctx, "User not allowed to create account",
			slog.String("user_id", identity.UserID),
			slog.String("team_id", teamID))
		return nil, err
	}

	errs := apperrors.FieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs.Add("name", "is required")
	}
	if !req.AccountType.IsValid() {
		errs.Add("accountType", "is not a known account type")
	}
	currencyCode := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if err := s.checkCurrency(ctx, currencyCode, errs); err != nil {
		return nil, err
	}
	var startBalance int64
	if req.StartBalance == nil {
		errs.Add("startBalance", "is required")
	} else if cents, err := money.DollarsToCents(*req.StartBalance); err != nil {
		errs.Add("startBalance", amountRangeMessage)
	} else {
		startBalance = cents
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		TeamID:       teamID,
		Type:         req.AccountType,
		Name:         name,
		StartBalance: startBalance,
		CurrencyCode: currencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     identity.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: identity.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("team_id", teamID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("team_id", teamID))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, identity *domain.Identity, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.loadAccount(ctx, identity, accountID, policy.AbilityUpdate)
	if err != nil {
		return nil, err
	}

	errs := apperrors.FieldErrors{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs.Add("name", "must not be blank")
		}
		account.Name = name
	}
	if req.AccountType != nil {
		if !req.AccountType.IsValid() {
			errs.Add("accountType", "is not a known account type")
		}
		account.Type = *req.AccountType
	}
	if req.CurrencyCode != nil {
		code := domain.NormalizeCurrencyCode(*req.CurrencyCode)
		if err := s.checkCurrency(ctx, code, errs); err != nil {
			return nil, err
		}
		account.CurrencyCode = code
	}
	if req.StartBalance != nil {
		if cents, err := money.DollarsToCents(*req.StartBalance); err != nil {
			errs.Add("startBalance", amountRangeMessage)
		} else {
			account.StartBalance = cents
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = identity.UserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes the account's transactions and then the account in
// one database transaction. Nothing is removed when either step fails.
func (s *accountService) DeleteAccount(ctx context.Context, identity *domain.Identity, accountID string) error {
	if _, err := s.loadAccount(ctx, identity, accountID, policy.AbilityDelete); err != nil {
		return err
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin account delete", slog.String("account_id", accountID))
		return err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.accountRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back account delete", slog.String("account_id", accountID))
		}
	}()

	removed, err := s.txnRepo.DeleteTransactionsByAccountInTx(ctx, tx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account transactions", slog.String("account_id", accountID))
		return err
	}
	if err := s.accountRepo.DeleteAccountInTx(ctx, tx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit account delete", slog.String("account_id", accountID))
		return err
	}
	committed = true

	s.LogInfo(ctx, "Account deleted",
		slog.String("account_id", accountID),
		slog.Int64("transactions_removed", removed))
	return nil
}

func (s *accountService) CurrentBalance(ctx context.Context, identity *domain.Identity, accountID string) (int64, error) {
	account, err := s.loadAccount(ctx, identity, accountID, policy.AbilityView)
	if err != nil {
		return 0, err
	}
	sum, err := s.txnRepo.SumAmounts(ctx, domain.TransactionFilter{
		TeamID:    account.TeamID,
		AccountID: &account.AccountID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account transactions", slog.String("account_id", accountID))
		return 0, err
	}
	return account.CurrentBalance(sum), nil
}

func (s *accountService) AddTransaction(ctx context.Context, identity *domain.Identity, accountID string, req dto.AddAccountTransactionRequest) (*domain.Transaction, error) {
	account, err := s.loadAccount(ctx, identity, accountID, policy.AbilityView)
	if err != nil {
		return nil, err
	}
	if err := policy.Transactions.AuthorizeCreate(identity); err != nil {
		return nil, err
	}
	if teamID, _ := identity.CurrentTeam(); teamID != account.TeamID {
		return nil, fmt.Errorf("%w: account is not in the current team", apperrors.ErrForbidden)
	}

	createdBy := identity.UserID
	if req.CreatedBy != nil && strings.TrimSpace(*req.CreatedBy) != "" {
		createdBy = strings.TrimSpace(*req.CreatedBy)
	}

	txn, errs := buildTransaction(account.TeamID, createdBy, transactionInput{
		AccountID:  &account.AccountID,
		CategoryID: req.CategoryID,
		Date:       req.Date,
		Payee:      req.Payee,
		Note:       req.Note,
		Amount:     req.Amount,
	}, time.Now().UTC())
	if err := checkCategory(ctx, s.categoryRepo, account.TeamID, txn.CategoryID, errs); err != nil {
		s.LogError(ctx, err, "Failed to check category", slog.String("account_id", accountID))
		return nil, err
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("account_id", accountID),
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	s.LogDebug(ctx, "Transaction added to account",
		slog.String("account_id", accountID),
		slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *accountService) checkCurrency(ctx context.Context, code string, errs apperrors.FieldErrors) error {
	if len(code) != 3 {
		errs.Add("currencyCode", "must be a three letter ISO code")
		return nil
	}
	if s.currencySvc == nil {
		return nil
	}
	ok, err := s.currencySvc.Exists(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up currency", slog.String("currency_code", code))
		return err
	}
	if !ok {
		errs.Add("currencyCode", "is not a supported currency")
	}
	return nil
}
