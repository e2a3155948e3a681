package models

import "time"

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	TeamID        string    `db:"team_id"`
	AccountID     *string   `db:"account_id"`  // Nullable
	CategoryID    *string   `db:"category_id"` // Nullable
	TxnDate       time.Time `db:"txn_date"`
	Payee         string    `db:"payee"`
	Note          *string   `db:"note"` // Nullable
	Amount        int64     `db:"amount"`
	AuditFields
}
