package dto

import (
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

// CreateTeamRequest defines the data needed to create a shared team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// AddTeamMemberRequest adds an existing user to a team by email.
type AddTeamMemberRequest struct {
	Email string          `json:"email" binding:"required,email"`
	Role  domain.TeamRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// SwitchTeamRequest selects the team subsequent requests act in.
type SwitchTeamRequest struct {
	TeamID string `json:"teamID" binding:"required,uuid"`
}

type TeamResponse struct {
	TeamID       string    `json:"teamID"`
	Name         string    `json:"name"`
	PersonalTeam bool      `json:"personalTeam"`
	OwnerID      string    `json:"ownerID"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:       t.TeamID,
		Name:         t.Name,
		PersonalTeam: t.PersonalTeam,
		OwnerID:      t.OwnerID,
		CreatedAt:    t.CreatedAt,
	}
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

func ToListTeamsResponse(teams []domain.Team) ListTeamsResponse {
	res := make([]TeamResponse, len(teams))
	for i := range teams {
		res[i] = ToTeamResponse(&teams[i])
	}
	return ListTeamsResponse{Teams: res}
}

type TeamMemberResponse struct {
	TeamID   string          `json:"teamID"`
	UserID   string          `json:"userID"`
	Role     domain.TeamRole `json:"role"`
	JoinedAt time.Time       `json:"joinedAt"`
}

func ToTeamMemberResponse(m *domain.TeamMembership) TeamMemberResponse {
	return TeamMemberResponse{TeamID: m.TeamID, UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt}
}
