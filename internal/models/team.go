package models

import "time"

// Team is the teams table row.
type Team struct {
	TeamID       string `db:"team_id"`
	Name         string `db:"name"`
	PersonalTeam bool   `db:"personal_team"`
	OwnerID      string `db:"owner_id"`
	AuditFields
}

// TeamUser is the team_user membership row.
type TeamUser struct {
	TeamID   string    `db:"team_id"`
	UserID   string    `db:"user_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
