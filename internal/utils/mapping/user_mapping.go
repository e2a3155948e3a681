package mapping

import (
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User. Empty hashes are
// stored as NULL.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                d.UserID,
		Name:                  d.Name,
		Email:                 d.Email,
		PasswordHash:          nullableString(d.PasswordHash),
		AuthProvider:          string(d.AuthProvider),
		ProviderUserID:        d.ProviderUserID,
		CurrentTeamID:         d.CurrentTeamID,
		RefreshTokenHash:      nullableString(d.RefreshTokenHash),
		RefreshTokenExpiresAt: d.RefreshTokenExpiresAt,
		CreatedAt:             d.CreatedAt,
		LastUpdatedAt:         d.LastUpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:                m.UserID,
		Name:                  m.Name,
		Email:                 m.Email,
		AuthProvider:          domain.AuthProvider(m.AuthProvider),
		ProviderUserID:        m.ProviderUserID,
		CurrentTeamID:         m.CurrentTeamID,
		RefreshTokenExpiresAt: m.RefreshTokenExpiresAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.UserID,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.UserID,
		},
	}
	if m.PasswordHash != nil {
		u.PasswordHash = *m.PasswordHash
	}
	if m.RefreshTokenHash != nil {
		u.RefreshTokenHash = *m.RefreshTokenHash
	}
	return u
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
