package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
)

type identityService struct {
	BaseService
	userRepo portsrepo.UserReader
	teamRepo portsrepo.TeamReader
}

func NewIdentityService(userRepo portsrepo.UserReader, teamRepo portsrepo.TeamReader) portssvc.IdentitySvc {
	return &identityService{userRepo: userRepo, teamRepo: teamRepo}
}

var _ portssvc.IdentitySvc = (*identityService)(nil)

// Resolve loads the user, their owned teams and memberships. It is called
// once per request.
func (s *identityService) Resolve(ctx context.Context, userID string) (*domain.Identity, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned, err := s.teamRepo.ListOwnedTeamIDs(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list owned teams", slog.String("user_id", userID))
		return nil, err
	}
	memberships, err := s.teamRepo.ListMembershipsForUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list memberships", slog.String("user_id", userID))
		return nil, err
	}
	return domain.NewIdentity(user.UserID, user.CurrentTeamID, owned, memberships), nil
}
