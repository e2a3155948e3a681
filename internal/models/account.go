package models

// Account is the accounts table row. There is no balance column.
type Account struct {
	AccountID    string `db:"account_id"`
	TeamID       string `db:"team_id"`
	AccountType  string `db:"account_type"`
	Name         string `db:"name"`
	StartBalance int64  `db:"start_balance"`
	CurrencyCode string `db:"currency_code"`
	AuditFields
}
