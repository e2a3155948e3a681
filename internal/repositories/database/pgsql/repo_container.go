package pgsql

import (
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TeamRepo:        newPgxTeamRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
	}
}
