package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
	"github.com/SscSPs/family_finance_tracker/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestToModelAccount_NormalizesCurrency(t *testing.T) {
	m := mapping.ToModelAccount(domain.Account{
		AccountID:    "acc-1",
		Type:         domain.AccountTypeCreditCard,
		CurrencyCode: "EUR",
		StartBalance: -12000,
	})
	assert.Equal(t, "eur", m.CurrencyCode)
	assert.Equal(t, "credit-card", m.AccountType)
	assert.Equal(t, int64(-12000), m.StartBalance)
}

func TestUserPasswordHashNullability(t *testing.T) {
	m := mapping.ToModelUser(domain.User{UserID: "u1", AuthProvider: domain.ProviderGoogle})
	assert.Nil(t, m.PasswordHash)

	hash := "$2a$10$abc"
	d := mapping.ToDomainUser(models.User{UserID: "u1", PasswordHash: &hash, CreatedAt: time.Unix(0, 0)})
	assert.Equal(t, hash, d.PasswordHash)
	assert.Equal(t, "u1", d.CreatedBy)
}

func TestToDomainTransactionSlice(t *testing.T) {
	acc := "acc-1"
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	out := mapping.ToDomainTransactionSlice([]models.Transaction{
		{TransactionID: "t1", TeamID: "team", AccountID: &acc, TxnDate: date, Amount: -2500},
		{TransactionID: "t2", TeamID: "team", TxnDate: date, Amount: 1500},
	})
	assert.Len(t, out, 2)
	assert.Equal(t, &acc, out[0].AccountID)
	assert.Nil(t, out[1].AccountID)
	assert.Equal(t, date, out[1].Date)
}
