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

type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyReader = (*PgxCurrencyRepository)(nil)

// FindCurrencyByCode expects a lower-case code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT currency_code, symbol, name FROM currencies WHERE currency_code = $1;`, currencyCode)
	if err != nil {
		return nil, mapPgError(err, "find currency "+currencyCode)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, mapPgError(err, "find currency "+currencyCode)
	}
	currency := mapping.ToDomainCurrency(m)
	return &currency, nil
}

func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT currency_code, symbol, name FROM currencies ORDER BY currency_code;`)
	if err != nil {
		return nil, mapPgError(err, "list currencies")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, mapPgError(err, "list currencies")
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}
