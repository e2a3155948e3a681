package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionInput is the part of a create request shared by the account
// and transaction endpoints.
type transactionInput struct {
	AccountID  *string
	CategoryID *string
	Date       string
	Payee      string
	Note       *string
	Amount     *decimal.Decimal
}

const amountRangeMessage = "is too large to store"

// buildTransaction validates in and returns a new, unsaved transaction.
func buildTransaction(teamID, createdBy string, in transactionInput, now time.Time) (domain.Transaction, apperrors.FieldErrors) {
	errs := apperrors.FieldErrors{}

	date, ok := parseDate(in.Date)
	if !ok {
		errs.Add("date", "must be a date formatted YYYY-MM-DD")
	}
	payee := strings.TrimSpace(in.Payee)
	if payee == "" {
		errs.Add("payee", "is required")
	}
	var amount int64
	if in.Amount == nil {
		errs.Add("amount", "is required")
	} else if cents, err := money.DollarsToCents(*in.Amount); err != nil {
		errs.Add("amount", amountRangeMessage)
	} else {
		amount = cents
	}

	return domain.Transaction{
		TransactionID: uuid.NewString(),
		TeamID:        teamID,
		AccountID:     normalizeOptionalID(in.AccountID),
		CategoryID:    normalizeOptionalID(in.CategoryID),
		Date:          date,
		Payee:         payee,
		Note:          normalizeNote(in.Note),
		Amount:        amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}, errs
}

// checkCategory records a field error unless categoryID is nil or names a
// category of teamID.
func checkCategory(ctx context.Context, repo portsrepo.CategoryReader, teamID string, categoryID *string, errs apperrors.FieldErrors) error {
	if categoryID == nil || repo == nil {
		return nil
	}
	category, err := repo.FindCategoryByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			errs.Add("categoryID", "category not found")
			return nil
		}
		return err
	}
	if category.TeamID != teamID {
		errs.Add("categoryID", "category belongs to another team")
	}
	return nil
}

// checkAccount records a field error unless accountID is nil or names an
// account of teamID.
func checkAccount(ctx context.Context, repo portsrepo.AccountReader, teamID string, accountID *string, errs apperrors.FieldErrors) error {
	if accountID == nil {
		return nil
	}
	account, err := repo.FindAccountByID(ctx, *accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			errs.Add("accountID", "account not found")
			return nil
		}
		return err
	}
	if account.TeamID != teamID {
		errs.Add("accountID", "account belongs to another team")
	}
	return nil
}

func parseDate(value string) (time.Time, bool) {
	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// normalizeOptionalID maps an empty id to nil.
func normalizeOptionalID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
