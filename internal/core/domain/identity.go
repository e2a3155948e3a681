package domain

// Identity is the request-scoped view of who is acting: the authenticated
// user, the team they currently work in, the teams they own and their role
// in every team they were added to. It is built once per request and passed
// explicitly to services and policies.
type Identity struct {
	UserID        string
	CurrentTeamID *string
	ownedTeams    map[string]struct{}
	roles         map[string]TeamRole
}

// NewIdentity builds an Identity from the user's owned teams and memberships.
func NewIdentity(userID string, currentTeamID *string, ownedTeamIDs []string, memberships []TeamMembership) *Identity {
	id := &Identity{
		UserID:        userID,
		CurrentTeamID: currentTeamID,
		ownedTeams:    make(map[string]struct{}, len(ownedTeamIDs)),
		roles:         make(map[string]TeamRole, len(memberships)),
	}
	for _, teamID := range ownedTeamIDs {
		id.ownedTeams[teamID] = struct{}{}
	}
	for _, m := range memberships {
		if m.UserID == "" || m.UserID == userID {
			id.roles[m.TeamID] = m.Role
		}
	}
	return id
}

// CurrentTeam returns the current team id and whether one is selected.
func (i *Identity) CurrentTeam() (string, bool) {
	if i == nil || i.CurrentTeamID == nil || *i.CurrentTeamID == "" {
		return "", false
	}
	return *i.CurrentTeamID, true
}

func (i *Identity) OwnsTeam(teamID string) bool {
	if i == nil {
		return false
	}
	_, ok := i.ownedTeams[teamID]
	return ok
}

// BelongsToTeam is true for owners and for any member regardless of role.
func (i *Identity) BelongsToTeam(teamID string) bool {
	if i == nil {
		return false
	}
	if i.OwnsTeam(teamID) {
		return true
	}
	_, ok := i.roles[teamID]
	return ok
}

func (i *Identity) HasRole(teamID string, role TeamRole) bool {
	if i == nil {
		return false
	}
	r, ok := i.roles[teamID]
	return ok && r == role
}

// TeamIDs lists every team the identity belongs to.
func (i *Identity) TeamIDs() []string {
	if i == nil {
		return nil
	}
	ids := make([]string, 0, len(i.ownedTeams)+len(i.roles))
	for id := range i.ownedTeams {
		ids = append(ids, id)
	}
	for id := range i.roles {
		if !i.OwnsTeam(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
