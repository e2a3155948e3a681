package pgsql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTransactionWhere(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	account := "acc-1"

	tests := []struct {
		name     string
		filter   domain.TransactionFilter
		wantSQL  string
		wantArgs int
	}{
		{
			name:     "team only",
			filter:   domain.TransactionFilter{TeamID: "team-1"},
			wantSQL:  "team_id = $1",
			wantArgs: 1,
		},
		{
			name:     "month of expenses",
			filter:   domain.TransactionFilter{TeamID: "team-1", From: &from, To: &to, Sign: domain.SignNegative},
			wantSQL:  "team_id = $1 AND txn_date >= $2 AND txn_date <= $3 AND amount < 0",
			wantArgs: 3,
		},
		{
			name: "account page after cursor",
			filter: domain.TransactionFilter{
				TeamID:    "team-1",
				AccountID: &account,
				Sign:      domain.SignPositive,
				After:     &domain.TransactionCursor{Date: to, TransactionID: "t9"},
			},
			wantSQL:  "team_id = $1 AND account_id = $2 AND amount > 0 AND (txn_date, transaction_id) < ($3, $4)",
			wantArgs: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := transactionWhere(tt.filter)
			assert.Equal(t, tt.wantSQL, where)
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, "team-1", args[0])
		})
	}
}

func TestMapPgError(t *testing.T) {
	assert.NoError(t, mapPgError(nil, "x"))
	assert.ErrorIs(t, mapPgError(pgx.ErrNoRows, "x"), apperrors.ErrNotFound)
	assert.ErrorIs(t, mapPgError(&pgconn.PgError{Code: pgUniqueViolation}, "x"), apperrors.ErrDuplicate)
	assert.ErrorIs(t, mapPgError(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgForeignKeyViolation}), "x"), apperrors.ErrValidation)

	badID := &pgconn.PgError{Code: pgInvalidTextRep, Message: `invalid input syntax for type uuid: "abc"`}
	assert.ErrorIs(t, mapPgError(badID, "find account abc"), apperrors.ErrNotFound)

	other := errors.New("boom")
	assert.ErrorIs(t, mapPgError(other, "x"), other)
}
