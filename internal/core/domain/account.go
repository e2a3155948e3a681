package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountType is the kind of money container an account represents.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit-card"
	AccountTypeCash       AccountType = "cash"
	AccountTypeOther      AccountType = "other"
)

// AccountTypes lists the accepted account types in display order.
var AccountTypes = []AccountType{
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCreditCard,
	AccountTypeCash,
	AccountTypeOther,
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Account is a named money container owned by a team. Its current balance
// is never stored: it is StartBalance plus the sum of its transactions.
type Account struct {
	AccountID    string      `json:"accountID"`
	TeamID       string      `json:"teamID"`
	Type         AccountType `json:"type"`
	Name         string      `json:"name"`
	StartBalance int64       `json:"startBalance"` // minor units, may be negative
	CurrencyCode string      `json:"currencyCode"` // lower-case ISO 4217
	AuditFields
}

func (a *Account) GetTeamID() string {
	return a.TeamID
}

// CurrentBalance adds the account's start balance to the sum of its
// transaction amounts.
func (a *Account) CurrentBalance(transactionSum int64) int64 {
	return a.StartBalance + transactionSum
}

// DisplayType renders the account type for people, e.g. "credit-card"
// becomes "Credit Card".
func (a *Account) DisplayType() string {
	return DisplayAccountType(a.Type)
}

// DisplayAccountType title-cases an account type, treating dashes and
// underscores as word breaks.
func DisplayAccountType(t AccountType) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(string(t))
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Title(language.English).String(strings.Join(strings.Fields(words), " "))
}

// AccountSummary pairs an account with its derived balance.
type AccountSummary struct {
	Account
	CurrentBalance int64 `json:"currentBalance"`
}
