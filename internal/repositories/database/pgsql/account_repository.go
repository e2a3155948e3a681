package pgsql

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/family_finance_tracker/internal/models"
	"github.com/SscSPs/family_finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, team_id, account_type, name, start_balance, currency_code,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, team_id, account_type, name, start_balance, currency_code,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.TeamID, m.AccountType, m.Name, m.StartBalance, m.CurrencyCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapPgError(err, "save account "+m.AccountID)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return nil, mapPgError(err, "find account "+accountID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "find account "+accountID)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (r *PgxAccountRepository) ListAccountsByTeam(ctx context.Context, teamID string) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE team_id = $1 ORDER BY name, account_id;`, teamID)
	if err != nil {
		return nil, mapPgError(err, "list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "list accounts")
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) SumStartBalances(ctx context.Context, teamID string) (int64, error) {
	var sum int64
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(start_balance), 0)::bigint FROM accounts WHERE team_id = $1;`, teamID).Scan(&sum)
	if err != nil {
		return 0, mapPgError(err, "sum start balances")
	}
	return sum, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET account_type = $2, name = $3, start_balance = $4, currency_code = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.AccountType, m.Name, m.StartBalance, m.CurrencyCode, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapPgError(err, "update account "+m.AccountID)
	}
	return expectOneRow(tag)
}

func (r *PgxAccountRepository) DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return mapPgError(err, "delete account "+accountID)
	}
	return expectOneRow(tag)
}
