package domain_test

import (
	"sync"
	"testing"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccount_DisplayType(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		want        string
	}{
		{name: "credit card", accountType: domain.AccountTypeCreditCard, want: "Credit Card"},
		{name: "checking", accountType: domain.AccountTypeChecking, want: "Checking"},
		{name: "underscore separated", accountType: domain.AccountType("money_market"), want: "Money Market"},
		{name: "already spaced", accountType: domain.AccountType("credit card"), want: "Credit Card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := domain.Account{Type: tt.accountType}
			assert.Equal(t, tt.want, acc.DisplayType())
		})
	}
}

func TestAccount_DisplayTypeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acc := domain.Account{Type: domain.AccountTypeCreditCard}
			if i%2 == 1 {
				acc.Type = domain.AccountType("money_market")
			}
			results[i] = acc.DisplayType()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 1 {
			assert.Equal(t, "Money Market", got)
		} else {
			assert.Equal(t, "Credit Card", got)
		}
	}
}

func TestAccount_CurrentBalance(t *testing.T) {
	acc := domain.Account{StartBalance: -50000}
	assert.Equal(t, int64(-50000), acc.CurrentBalance(0), "empty ledger keeps the start balance")
	assert.Equal(t, int64(-35000), acc.CurrentBalance(15000))
}

func TestAccountType_IsValid(t *testing.T) {
	for _, at := range domain.AccountTypes {
		assert.True(t, at.IsValid(), string(at))
	}
	assert.False(t, domain.AccountType("brokerage").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}
