package mapping

import (
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
)

func ToModelTeam(d domain.Team) models.Team {
	return models.Team{
		TeamID:       d.TeamID,
		Name:         d.Name,
		PersonalTeam: d.PersonalTeam,
		OwnerID:      d.OwnerID,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func ToDomainTeam(m models.Team) domain.Team {
	return domain.Team{
		TeamID:       m.TeamID,
		Name:         m.Name,
		PersonalTeam: m.PersonalTeam,
		OwnerID:      m.OwnerID,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

func ToDomainTeamSlice(ms []models.Team) []domain.Team {
	return mapSlice(ms, ToDomainTeam)
}

func ToDomainMembership(m models.TeamUser) domain.TeamMembership {
	return domain.TeamMembership{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		Role:     domain.TeamRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func ToDomainMembershipSlice(ms []models.TeamUser) []domain.TeamMembership {
	return mapSlice(ms, ToDomainMembership)
}
