package models

import "time"

// User is the users table row.
type User struct {
	UserID                string     `db:"user_id"`
	Name                  string     `db:"name"`
	Email                 string     `db:"email"`
	PasswordHash          *string    `db:"password_hash"` // Nullable for Google-only users
	AuthProvider          string     `db:"auth_provider"`
	ProviderUserID        *string    `db:"provider_user_id"`
	CurrentTeamID         *string    `db:"current_team_id"`
	RefreshTokenHash      *string    `db:"refresh_token_hash"`
	RefreshTokenExpiresAt *time.Time `db:"refresh_token_expires_at"`
	CreatedAt             time.Time  `db:"created_at"`
	LastUpdatedAt         time.Time  `db:"last_updated_at"`
}
