package models

// Category is the categories table row.
type Category struct {
	CategoryID string `db:"category_id"`
	TeamID     string `db:"team_id"`
	Name       string `db:"name"`
	AuditFields
}
