package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/core/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	txnRepo      *MockTransactionRepository
	accountRepo  *MockAccountRepository
	categoryRepo *MockCategoryRepository
	service      portssvc.TransactionSvcFacade
	identity     *domain.Identity
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.txnRepo = new(MockTransactionRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.accountRepo, suite.categoryRepo)
	suite.identity = ownerOf("user-1", "team-1")
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.txnRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
	suite.categoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Unattached() {
	amount := decimal.RequireFromString("19.99")
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TeamID == "team-1" && t.AccountID == nil && t.Amount == 1999
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.identity, dto.CreateTransactionRequest{
		Date:   "2024-05-02",
		Payee:  "Paycheck",
		Amount: &amount,
	})

	suite.Require().NoError(err)
	suite.Equal("user-1", txn.CreatedBy)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignAccount() {
	amount := decimal.NewFromInt(1)
	accountID := "acc-x"
	suite.accountRepo.On("FindAccountByID", suite.ctx, accountID).
		Return(&domain.Account{AccountID: accountID, TeamID: "team-2"}, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, suite.identity, dto.CreateTransactionRequest{
		AccountID: &accountID,
		Date:      "2024-05-02",
		Payee:     "x",
		Amount:    &amount,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	fields, ok := err.(apperrors.FieldErrors)
	suite.Require().True(ok)
	suite.Equal("account belongs to another team", fields["accountID"])
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValidationCollectsFields() {
	_, err := suite.service.CreateTransaction(suite.ctx, suite.identity, dto.CreateTransactionRequest{
		Date:  "15/03/2024",
		Payee: "   ",
	})

	fields, ok := err.(apperrors.FieldErrors)
	suite.Require().True(ok)
	suite.Contains(fields, "date")
	suite.Contains(fields, "payee")
	suite.Contains(fields, "amount")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Paginates() {
	rows := []domain.Transaction{
		{TransactionID: "c", TeamID: "team-1", Date: day("2024-03-20")},
		{TransactionID: "b", TeamID: "team-1", Date: day("2024-03-10")},
		{TransactionID: "a", TeamID: "team-1", Date: day("2024-03-01")},
	}
	month := "2024-03"
	suite.txnRepo.On("ListTransactions", suite.ctx, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.TeamID == "team-1" && f.Limit == 3 && f.From != nil && f.To != nil &&
			f.From.Format(domain.DateLayout) == "2024-03-01" &&
			f.To.Format(domain.DateLayout) == "2024-03-31" &&
			f.Sign == domain.SignNegative
	})).Return(rows, nil).Once()

	page, err := suite.service.ListTransactions(suite.ctx, suite.identity, dto.ListTransactionsParams{
		Month: &month,
		Sign:  "negative",
		Limit: 2,
	})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 2)
	cursor, err := pagination.DecodeTransactionCursor(page.NextPageToken)
	suite.Require().NoError(err)
	suite.Equal("b", cursor.TransactionID)
	suite.Equal("2024-03-10", cursor.Date.Format(domain.DateLayout))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_LastPageHasNoToken() {
	suite.txnRepo.On("ListTransactions", suite.ctx, mock.Anything).
		Return([]domain.Transaction{{TransactionID: "a", TeamID: "team-1"}}, nil).Once()

	page, err := suite.service.ListTransactions(suite.ctx, suite.identity, dto.ListTransactionsParams{Limit: 5})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 1)
	suite.Empty(page.NextPageToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	_, err := suite.service.ListTransactions(suite.ctx, suite.identity, dto.ListTransactionsParams{NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestExportTransactions_FollowsPages() {
	store := &ledgerStore{}
	for i := 0; i < 750; i++ {
		store.txns = append(store.txns, domain.Transaction{
			TransactionID: fmt.Sprintf("t%04d", i),
			TeamID:        "team-1",
			Date:          day("2024-01-01").AddDate(0, 0, i%60),
			Amount:        -1,
		})
	}
	service := services.NewTransactionService(storeTxnRepo{store}, suite.accountRepo, suite.categoryRepo)

	all, err := service.ExportTransactions(suite.ctx, suite.identity, dto.ListTransactionsParams{Limit: 20, NextToken: "ignored"})

	suite.Require().NoError(err)
	suite.Len(all, 750)
	seen := map[string]bool{}
	for _, t := range all {
		seen[t.TransactionID] = true
	}
	suite.Len(seen, 750)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DetachesAccount() {
	accountID := "acc-1"
	existing := &domain.Transaction{TransactionID: "t1", TeamID: "team-1", AccountID: &accountID, Payee: "Old", Amount: -10}
	empty := ""
	payee := "New"
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "t1").Return(existing, nil).Once()
	suite.txnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.AccountID == nil && t.Payee == "New" && t.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, suite.identity, "t1", dto.UpdateTransactionRequest{
		AccountID: &empty,
		Payee:     &payee,
	})

	suite.Require().NoError(err)
	suite.Nil(txn.AccountID)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ReadOnlyForbidden() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "t1").
		Return(&domain.Transaction{TransactionID: "t1", TeamID: "team-1"}, nil).Once()

	err := suite.service.DeleteTransaction(suite.ctx, memberOf("user-2", "team-1", domain.RoleReadOnly), "t1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

// storeTxnRepo serves reads from a ledgerStore and ignores writes.
type storeTxnRepo struct {
	*ledgerStore
}

func (storeTxnRepo) SaveTransaction(context.Context, domain.Transaction) error   { return nil }
func (storeTxnRepo) UpdateTransaction(context.Context, domain.Transaction) error { return nil }
func (storeTxnRepo) DeleteTransaction(context.Context, string) error             { return nil }
func (storeTxnRepo) DeleteTransactionsByAccountInTx(context.Context, pgx.Tx, string) (int64, error) {
	return 0, nil
}
