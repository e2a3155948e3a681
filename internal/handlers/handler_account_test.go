package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/handlers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerSuite struct {
	HandlerSuite
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) newAccount() *domain.Account {
	now := time.Now().UTC()
	return &domain.Account{
		AccountID:    uuid.NewString(),
		TeamID:       s.currentTeamID,
		Type:         domain.AccountTypeCreditCard,
		Name:         "Visa",
		StartBalance: 10000,
		CurrencyCode: "usd",
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: s.testUserID, LastUpdatedAt: now, LastUpdatedBy: s.testUserID,
		},
	}
}

func (s *AccountHandlerSuite) TestCreateAccount_Success() {
	account := s.newAccount()
	s.accountSvc.On("CreateAccount", mock.Anything, s.identity, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Name == "Visa" && req.StartBalance != nil && req.StartBalance.String() == "100"
	})).Return(account, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name":         "Visa",
		"accountType":  "credit-card",
		"currencyCode": "usd",
		"startBalance": "100.00",
	})

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.AccountResponse
	s.decode(w, &res)
	s.Equal(account.AccountID, res.AccountID)
	s.Equal("Credit Card", res.DisplayType)
	s.Nil(res.CurrentBalance)
}

func (s *AccountHandlerSuite) TestCreateAccount_BindingErrorsPerField() {
	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"accountType":  "piggy-bank",
		"currencyCode": "usd",
		"startBalance": 1,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var res handlers.ErrorResponse
	s.decode(w, &res)
	s.Equal("is required", res.Fields["name"])
	s.Contains(res.Fields["accountType"], "must be one of")
	s.accountSvc.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerSuite) TestCreateAccount_ServiceFieldErrors() {
	s.accountSvc.On("CreateAccount", mock.Anything, s.identity, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, apperrors.NewFieldError("currencyCode", "is not a supported currency")).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name": "Cash", "accountType": "cash", "currencyCode": "xxx", "startBalance": "0",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var res handlers.ErrorResponse
	s.decode(w, &res)
	s.Equal("is not a supported currency", res.Fields["currencyCode"])
}

func (s *AccountHandlerSuite) TestCreateAccount_Forbidden() {
	s.accountSvc.On("CreateAccount", mock.Anything, s.identity, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, apperrors.ErrForbidden).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", map[string]any{
		"name": "Cash", "accountType": "cash", "currencyCode": "usd", "startBalance": "0",
	})

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AccountHandlerSuite) TestRequiresToken() {
	w := s.send(http.MethodGet, "/api/v1/accounts", nil, false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AccountHandlerSuite) TestListAccounts_RendersBalances() {
	account := s.newAccount()
	s.accountSvc.On("ListAccounts", mock.Anything, s.identity).
		Return([]domain.AccountSummary{{Account: *account, CurrentBalance: -123456}}, nil).Once()
	s.currencySvc.On("CurrencyTable", mock.Anything).
		Return(domain.NewCurrencyTable([]domain.Currency{{CurrencyCode: "usd", Symbol: "$", Name: "US Dollar"}}), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts", nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListAccountsResponse
	s.decode(w, &res)
	s.Require().Len(res.Accounts, 1)
	s.Require().NotNil(res.Accounts[0].CurrentBalance)
	s.Equal(int64(-123456), *res.Accounts[0].CurrentBalance)
	s.Equal("-$1,234.56", res.Accounts[0].CurrentBalanceDisplay)
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	missing := uuid.NewString()
	s.accountSvc.On("GetAccount", mock.Anything, s.identity, missing).Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/"+missing, nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AccountHandlerSuite) TestMalformedAccountIDIsNotFound() {
	for _, path := range []string{
		"/api/v1/accounts/abc",
		"/api/v1/accounts/abc/balance",
	} {
		w := s.do(http.MethodGet, path, nil)
		s.Equal(http.StatusNotFound, w.Code, path)
	}

	w := s.do(http.MethodDelete, "/api/v1/accounts/123", nil)
	s.Equal(http.StatusNotFound, w.Code)

	s.accountSvc.AssertNotCalled(s.T(), "GetAccount", mock.Anything, mock.Anything, mock.Anything)
	s.accountSvc.AssertNotCalled(s.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerSuite) TestGetAccount_OtherTeamForbidden() {
	other := uuid.NewString()
	s.accountSvc.On("GetAccount", mock.Anything, s.identity, other).
		Return(nil, fmt.Errorf("view account: %w", apperrors.ErrForbidden)).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/"+other, nil)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AccountHandlerSuite) TestGetAccountBalance() {
	account := s.newAccount()
	s.accountSvc.On("GetAccount", mock.Anything, s.identity, account.AccountID).Return(account, nil).Once()
	s.accountSvc.On("CurrentBalance", mock.Anything, s.identity, account.AccountID).Return(int64(9500), nil).Once()
	s.currencySvc.On("SymbolFor", mock.Anything, "usd").Return("$")

	w := s.do(http.MethodGet, "/api/v1/accounts/"+account.AccountID+"/balance", nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.AccountBalanceResponse
	s.decode(w, &res)
	s.Equal(int64(9500), res.Balance)
	s.Equal("+$95.00", res.Display)
	s.Equal("$95.00", res.Formatted)
}

func (s *AccountHandlerSuite) TestDeleteAccount() {
	accountID := uuid.NewString()
	s.accountSvc.On("DeleteAccount", mock.Anything, s.identity, accountID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AccountHandlerSuite) TestDeleteAccount_StorageFailureIsHidden() {
	accountID := uuid.NewString()
	s.accountSvc.On("DeleteAccount", mock.Anything, s.identity, accountID).
		Return(apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", fmt.Errorf("connection reset"))).Once()

	w := s.do(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	var res handlers.ErrorResponse
	s.decode(w, &res)
	s.Equal("Failed to delete account", res.Error)
}

func (s *AccountHandlerSuite) TestAddTransaction() {
	account := s.newAccount()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		TeamID:        s.currentTeamID,
		AccountID:     &account.AccountID,
		Date:          time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Payee:         "Grocer",
		Amount:        -4250,
	}
	s.accountSvc.On("AddTransaction", mock.Anything, s.identity, account.AccountID, mock.MatchedBy(func(req dto.AddAccountTransactionRequest) bool {
		return req.Payee == "Grocer" && req.Date == "2024-03-15"
	})).Return(txn, nil).Once()
	s.accountSvc.On("GetAccount", mock.Anything, s.identity, account.AccountID).Return(account, nil).Once()
	s.currencySvc.On("SymbolFor", mock.Anything, "usd").Return("$")

	w := s.do(http.MethodPost, "/api/v1/accounts/"+account.AccountID+"/transactions", map[string]any{
		"date": "2024-03-15", "payee": "Grocer", "amount": "-42.50",
	})

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.TransactionResponse
	s.decode(w, &res)
	s.Equal(s.currentTeamID, res.TeamID)
	s.Equal("-$42.50", res.Display)
	s.Equal("2024-03-15", res.Date)
}

func (s *AccountHandlerSuite) TestAddTransaction_InvalidDate() {
	accountID := uuid.NewString()

	w := s.do(http.MethodPost, "/api/v1/accounts/"+accountID+"/transactions", map[string]any{
		"date": "15/03/2024", "payee": "Grocer", "amount": "-42.50",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	var res handlers.ErrorResponse
	s.decode(w, &res)
	s.Equal("must match 2006-01-02", res.Fields["date"])
}
