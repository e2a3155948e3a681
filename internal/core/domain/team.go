package domain

import "time"

// Team is the tenant boundary. Accounts, categories and transactions all
// belong to exactly one team.
type Team struct {
	TeamID       string `json:"teamID"`
	Name         string `json:"name"`
	PersonalTeam bool   `json:"personalTeam"`
	OwnerID      string `json:"ownerID"`
	AuditFields
}

// GetTeamID returns the team itself, so a team can be checked like any
// other team-scoped resource.
func (t *Team) GetTeamID() string {
	return t.TeamID
}

// TeamRole defines the possible roles a user can have within a team.
type TeamRole string

const (
	RoleAdmin    TeamRole = "ADMIN"
	RoleMember   TeamRole = "MEMBER"
	RoleReadOnly TeamRole = "READONLY"
)

// IsValid reports whether r is one of the known roles.
func (r TeamRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleReadOnly:
		return true
	}
	return false
}

// TeamMembership represents the membership of a User in a Team.
// Team owners do not need a membership row.
type TeamMembership struct {
	TeamID   string    `json:"teamID"`
	UserID   string    `json:"userID"`
	Role     TeamRole  `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
