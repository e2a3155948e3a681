package mapping

import (
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		TeamID:       d.TeamID,
		AccountType:  string(d.Type),
		Name:         d.Name,
		StartBalance: d.StartBalance,
		CurrencyCode: domain.NormalizeCurrencyCode(d.CurrencyCode),
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		TeamID:       m.TeamID,
		Type:         domain.AccountType(m.AccountType),
		Name:         m.Name,
		StartBalance: m.StartBalance,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	return mapSlice(ms, ToDomainAccount)
}
