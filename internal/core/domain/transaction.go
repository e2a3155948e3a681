package domain

import "time"

// Transaction is a dated, signed ledger entry in minor units. Positive
// amounts are income, negative amounts are expenses. AccountID and
// CategoryID are optional.
type Transaction struct {
	TransactionID string    `json:"transactionID"`
	TeamID        string    `json:"teamID"`
	AccountID     *string   `json:"accountID,omitempty"`
	CategoryID    *string   `json:"categoryID,omitempty"`
	Date          time.Time `json:"date"`
	Payee         string    `json:"payee"`
	Note          *string   `json:"note,omitempty"`
	Amount        int64     `json:"amount"`
	AuditFields
}

func (t *Transaction) GetTeamID() string {
	return t.TeamID
}

// AmountSign restricts a transaction query to one side of zero.
type AmountSign string

const (
	SignAny      AmountSign = ""
	SignPositive AmountSign = "positive" // amount > 0
	SignNegative AmountSign = "negative" // amount < 0
)

// TransactionCursor marks the last row of a page in date-descending order.
type TransactionCursor struct {
	Date          time.Time
	TransactionID string
}

// TransactionFilter narrows transaction listings and sums to one team.
// From and To are inclusive calendar dates. Limit and After only apply to
// listings.
type TransactionFilter struct {
	TeamID     string
	AccountID  *string
	CategoryID *string
	From       *time.Time
	To         *time.Time
	Sign       AmountSign
	Limit      int
	After      *TransactionCursor
}

// TransactionPage is one page of a date-descending listing.
type TransactionPage struct {
	Transactions  []Transaction `json:"transactions"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}
