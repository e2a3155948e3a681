package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/family_finance_tracker/internal/models"
	"github.com/SscSPs/family_finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, team_id, account_id, category_id, txn_date, payee, note, amount,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// transactionWhere renders the WHERE clause for filter. Limit is not part of it.
func transactionWhere(filter domain.TransactionFilter) (string, []any) {
	conds := []string{"team_id = $1"}
	args := []any{filter.TeamID}
	add := func(format string, values ...any) {
		placeholders := make([]any, len(values))
		for i, v := range values {
			args = append(args, v)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conds = append(conds, fmt.Sprintf(format, placeholders...))
	}

	if filter.AccountID != nil {
		add("account_id = %s", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		add("category_id = %s", *filter.CategoryID)
	}
	if filter.From != nil {
		add("txn_date >= %s", *filter.From)
	}
	if filter.To != nil {
		add("txn_date <= %s", *filter.To)
	}
	switch filter.Sign {
	case domain.SignPositive:
		conds = append(conds, "amount > 0")
	case domain.SignNegative:
		conds = append(conds, "amount < 0")
	}
	if filter.After != nil {
		add("(txn_date, transaction_id) < (%s, %s)", filter.After.Date, filter.After.TransactionID)
	}
	return strings.Join(conds, " AND "), args
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return nil, mapPgError(err, "find transaction "+transactionID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapPgError(err, "find transaction "+transactionID)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where, args := transactionWhere(filter)
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + where +
		` ORDER BY txn_date DESC, transaction_id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "list transactions")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapPgError(err, "list transactions")
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) SumAmounts(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	filter.After = nil
	where, args := transactionWhere(filter)
	var sum int64
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::bigint FROM transactions WHERE `+where, args...).Scan(&sum)
	if err != nil {
		return 0, mapPgError(err, "sum transactions")
	}
	return sum, nil
}

func (r *PgxTransactionRepository) SumAmountsByAccount(ctx context.Context, teamID string) (map[string]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT account_id, COALESCE(SUM(amount), 0)::bigint
		FROM transactions
		WHERE team_id = $1 AND account_id IS NOT NULL
		GROUP BY account_id;`, teamID)
	if err != nil {
		return nil, mapPgError(err, "sum transactions by account")
	}
	defer rows.Close()

	sums := make(map[string]int64)
	for rows.Next() {
		var accountID string
		var sum int64
		if err := rows.Scan(&accountID, &sum); err != nil {
			return nil, mapPgError(err, "scan account sum")
		}
		sums[accountID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "sum transactions by account")
	}
	return sums, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, team_id, account_id, category_id, txn_date, payee, note, amount,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.TeamID, m.AccountID, m.CategoryID, m.TxnDate, m.Payee, m.Note, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapPgError(err, "save transaction "+m.TransactionID)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET account_id = $2, category_id = $3, txn_date = $4, payee = $5, note = $6, amount = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.AccountID, m.CategoryID, m.TxnDate, m.Payee, m.Note, m.Amount,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "update transaction "+m.TransactionID)
	}
	return expectOneRow(tag)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return mapPgError(err, "delete transaction "+transactionID)
	}
	return expectOneRow(tag)
}

func (r *PgxTransactionRepository) DeleteTransactionsByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE account_id = $1;`, accountID)
	if err != nil {
		return 0, mapPgError(err, "delete transactions of account "+accountID)
	}
	return tag.RowsAffected(), nil
}
