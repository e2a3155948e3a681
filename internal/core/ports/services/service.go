package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Team        TeamSvcFacade
	TeamLedger  TeamLedgerSvc
	Currency    CurrencySvcFacade
	User        UserSvcFacade
	Identity    IdentitySvc
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
