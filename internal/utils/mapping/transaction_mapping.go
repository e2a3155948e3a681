package mapping

import (
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		TeamID:        d.TeamID,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
		TxnDate:       d.Date,
		Payee:         d.Payee,
		Note:          d.Note,
		Amount:        d.Amount,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		TeamID:        m.TeamID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		Date:          m.TxnDate,
		Payee:         m.Payee,
		Note:          m.Note,
		Amount:        m.Amount,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return mapSlice(ms, ToDomainTransaction)
}
