package domain

// Category is a team-scoped label. Names are unique per team.
type Category struct {
	CategoryID string `json:"categoryID"`
	TeamID     string `json:"teamID"`
	Name       string `json:"name"`
	AuditFields
}

func (c *Category) GetTeamID() string {
	return c.TeamID
}
