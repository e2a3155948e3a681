package services

import (
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/platform/config"
)

// NewServiceContainer wires every service from the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	teamSvc := NewTeamService(repos.TeamRepo, repos.UserRepo)

	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo, repos.TransactionRepo,
			WithCurrencyService(currencySvc),
			WithCategoryReader(repos.CategoryRepo),
		),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo),
		Category:    NewCategoryService(repos.CategoryRepo, repos.TransactionRepo),
		Team:        teamSvc,
		TeamLedger:  NewTeamLedgerService(repos.AccountRepo, repos.TransactionRepo),
		Currency:    currencySvc,
		User:        NewUserService(repos.UserRepo, teamSvc),
		Identity:    NewIdentityService(repos.UserRepo, repos.TeamRepo),
		Token:       NewTokenService(cfg, repos.UserRepo),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
