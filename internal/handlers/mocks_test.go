package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, identity *domain.Identity, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, identity, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, identity *domain.Identity) ([]domain.AccountSummary, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSummary), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, identity *domain.Identity, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, identity *domain.Identity, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, identity, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, identity *domain.Identity, accountID string) error {
	args := m.Called(ctx, identity, accountID)
	return args.Error(0)
}
func (m *MockAccountService) CurrentBalance(ctx context.Context, identity *domain.Identity, accountID string) (int64, error) {
	args := m.Called(ctx, identity, accountID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAccountService) AddTransaction(ctx context.Context, identity *domain.Identity, accountID string, req dto.AddAccountTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, identity, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, identity *domain.Identity, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, identity, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, identity *domain.Identity, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}
func (m *MockTransactionService) ExportTransactions(ctx context.Context, identity *domain.Identity, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, identity *domain.Identity, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, identity *domain.Identity, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, identity, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, identity *domain.Identity, transactionID string) error {
	args := m.Called(ctx, identity, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, identity *domain.Identity, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategory(ctx context.Context, identity *domain.Identity, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, identity, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, identity *domain.Identity) ([]domain.Category, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) RenameCategory(ctx context.Context, identity *domain.Identity, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, identity, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, identity *domain.Identity, categoryID string) error {
	args := m.Called(ctx, identity, categoryID)
	return args.Error(0)
}
func (m *MockCategoryService) CategoryHistory(ctx context.Context, identity *domain.Identity, categoryID string, limit int, nextToken string) (*domain.TransactionPage, error) {
	args := m.Called(ctx, identity, categoryID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock TeamService ---
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, identity *domain.Identity, req dto.CreateTeamRequest) (*domain.Team, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamService) CreatePersonalTeam(ctx context.Context, user *domain.User) (*domain.Team, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamService) ListTeams(ctx context.Context, identity *domain.Identity) ([]domain.Team, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}
func (m *MockTeamService) AddMember(ctx context.Context, identity *domain.Identity, teamID string, req dto.AddTeamMemberRequest) (*domain.TeamMembership, error) {
	args := m.Called(ctx, identity, teamID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMembership), args.Error(1)
}
func (m *MockTeamService) SwitchCurrentTeam(ctx context.Context, identity *domain.Identity, teamID string) error {
	args := m.Called(ctx, identity, teamID)
	return args.Error(0)
}

var _ portssvc.TeamSvcFacade = (*MockTeamService)(nil)

// --- Mock TeamLedgerService ---
// Only Dashboard is served over HTTP; the per-figure methods exist to satisfy
// the interface.
type MockTeamLedgerService struct {
	mock.Mock
}

func (m *MockTeamLedgerService) int64Call(ctx context.Context, method string, teamID string, date time.Time) (int64, error) {
	args := m.MethodCalled(method, ctx, teamID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamLedgerService) MonthExpenses(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return m.int64Call(ctx, "MonthExpenses", teamID, date)
}
func (m *MockTeamLedgerService) MonthIncome(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return m.int64Call(ctx, "MonthIncome", teamID, date)
}
func (m *MockTeamLedgerService) MonthEndBalance(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return m.int64Call(ctx, "MonthEndBalance", teamID, date)
}
func (m *MockTeamLedgerService) ExpensesChange(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return m.int64Call(ctx, "ExpensesChange", teamID, date)
}
func (m *MockTeamLedgerService) IncomeChange(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return m.int64Call(ctx, "IncomeChange", teamID, date)
}
func (m *MockTeamLedgerService) BalanceChange(ctx context.Context, teamID string, date time.Time) (int64, error) {
	return m.int64Call(ctx, "BalanceChange", teamID, date)
}
func (m *MockTeamLedgerService) ExpensesChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error) {
	args := m.Called(ctx, teamID, date)
	return args.Get(0).(*float64), args.Error(1)
}
func (m *MockTeamLedgerService) IncomeChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error) {
	args := m.Called(ctx, teamID, date)
	return args.Get(0).(*float64), args.Error(1)
}
func (m *MockTeamLedgerService) BalanceChangePercentage(ctx context.Context, teamID string, date time.Time) (*float64, error) {
	args := m.Called(ctx, teamID, date)
	return args.Get(0).(*float64), args.Error(1)
}
func (m *MockTeamLedgerService) ExpensesChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error) {
	args := m.Called(ctx, teamID, date)
	return args.String(0), args.Error(1)
}
func (m *MockTeamLedgerService) IncomeChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error) {
	args := m.Called(ctx, teamID, date)
	return args.String(0), args.Error(1)
}
func (m *MockTeamLedgerService) BalanceChangeFormatted(ctx context.Context, teamID string, date time.Time) (string, error) {
	args := m.Called(ctx, teamID, date)
	return args.String(0), args.Error(1)
}
func (m *MockTeamLedgerService) ExpensesChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error) {
	args := m.Called(ctx, teamID, date)
	return args.Get(0).(domain.Polarity), args.Error(1)
}
func (m *MockTeamLedgerService) IncomeChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error) {
	args := m.Called(ctx, teamID, date)
	return args.Get(0).(domain.Polarity), args.Error(1)
}
func (m *MockTeamLedgerService) BalanceChangeColor(ctx context.Context, teamID string, date time.Time) (domain.Polarity, error) {
	args := m.Called(ctx, teamID, date)
	return args.Get(0).(domain.Polarity), args.Error(1)
}
func (m *MockTeamLedgerService) TotalBalanceInDollars(ctx context.Context, teamID string) (float64, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockTeamLedgerService) MonthlySummary(ctx context.Context, teamID string, date time.Time) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, teamID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}
func (m *MockTeamLedgerService) Dashboard(ctx context.Context, identity *domain.Identity, date time.Time) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, identity, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}

var _ portssvc.TeamLedgerSvc = (*MockTeamLedgerService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) CurrencyTable(ctx context.Context) (domain.CurrencyTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CurrencyTable), args.Error(1)
}
func (m *MockCurrencyService) SymbolFor(ctx context.Context, currencyCode string) string {
	args := m.Called(ctx, currencyCode)
	return args.String(0)
}
func (m *MockCurrencyService) Exists(ctx context.Context, currencyCode string) (bool, error) {
	args := m.Called(ctx, currencyCode)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, name, email, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Resolve(ctx context.Context, userID string) (*domain.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

var _ portssvc.IdentitySvc = (*MockIdentityService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)
