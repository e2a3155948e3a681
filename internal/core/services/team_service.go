package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/google/uuid"
)

type teamService struct {
	BaseService
	teamRepo portsrepo.TeamRepositoryWithTx
	userRepo portsrepo.UserRepositoryFacade
}

func NewTeamService(teamRepo portsrepo.TeamRepositoryWithTx, userRepo portsrepo.UserRepositoryFacade) portssvc.TeamSvcFacade {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

var _ portssvc.TeamSvcFacade = (*teamService)(nil)

func (s *teamService) CreateTeam(ctx context.Context, identity *domain.Identity, req dto.CreateTeamRequest) (*domain.Team, error) {
	if identity == nil {
		return nil, apperrors.ErrUnauthorized
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "is required")
	}
	return s.createAndSelect(ctx, identity.UserID, name, false)
}

func (s *teamService) CreatePersonalTeam(ctx context.Context, user *domain.User) (*domain.Team, error) {
	team, err := s.createAndSelect(ctx, user.UserID, personalTeamName(user.Name), true)
	if err != nil {
		return nil, err
	}
	user.CurrentTeamID = &team.TeamID
	return team, nil
}

// createAndSelect saves the team and makes it the owner's current team in one
// database transaction.
func (s *teamService) createAndSelect(ctx context.Context, ownerID, name string, personal bool) (*domain.Team, error) {
	now := time.Now().UTC()
	team := domain.Team{
		TeamID:       uuid.NewString(),
		Name:         name,
		PersonalTeam: personal,
		OwnerID:      ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	tx, err := s.teamRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin team create", slog.String("owner_id", ownerID))
		return nil, err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.teamRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back team create", slog.String("team_id", team.TeamID))
		}
	}()

	if err := s.teamRepo.SaveTeamInTx(ctx, tx, team); err != nil {
		s.LogError(ctx, err, "Failed to save team", slog.String("owner_id", ownerID))
		return nil, err
	}
	if err := s.userRepo.UpdateCurrentTeamInTx(ctx, tx, ownerID, team.TeamID); err != nil {
		s.LogError(ctx, err, "Failed to select new team",
			slog.String("owner_id", ownerID),
			slog.String("team_id", team.TeamID))
		return nil, err
	}
	if err := s.teamRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit team create", slog.String("team_id", team.TeamID))
		return nil, err
	}
	committed = true

	s.LogInfo(ctx, "Team created",
		slog.String("team_id", team.TeamID),
		slog.Bool("personal", personal))
	return &team, nil
}

func (s *teamService) ListTeams(ctx context.Context, identity *domain.Identity) ([]domain.Team, error) {
	if identity == nil {
		return nil, apperrors.ErrUnauthorized
	}
	teams, err := s.teamRepo.ListTeamsForUser(ctx, identity.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list teams", slog.String("user_id", identity.UserID))
		return nil, err
	}
	return teams, nil
}

func (s *teamService) AddMember(ctx context.Context, identity *domain.Identity, teamID string, req dto.AddTeamMemberRequest) (*domain.TeamMembership, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find team", slog.String("team_id", teamID))
		return nil, err
	}
	if err := policy.Teams.Authorize(policy.AbilityUpdate, identity, team); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewFieldError("role", "must be ADMIN, MEMBER or READONLY")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("email", "no user is registered with this email")
		}
		return nil, err
	}
	if user.UserID == team.OwnerID {
		return nil, apperrors.NewFieldError("email", "user already owns this team")
	}

	membership := domain.TeamMembership{
		TeamID:   team.TeamID,
		UserID:   user.UserID,
		Role:     req.Role,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.teamRepo.AddMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add team member",
			slog.String("team_id", teamID),
			slog.String("member_id", user.UserID))
		return nil, err
	}
	return &membership, nil
}

func (s *teamService) SwitchCurrentTeam(ctx context.Context, identity *domain.Identity, teamID string) error {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		return err
	}
	if err := policy.Teams.Authorize(policy.AbilityView, identity, team); err != nil {
		return fmt.Errorf("cannot switch to team %s: %w", teamID, err)
	}
	if err := s.userRepo.UpdateCurrentTeam(ctx, identity.UserID, team.TeamID); err != nil {
		s.LogError(ctx, err, "Failed to switch team", slog.String("team_id", teamID))
		return err
	}
	identity.CurrentTeamID = &team.TeamID
	return nil
}

func personalTeamName(userName string) string {
	first := strings.Fields(userName)
	if len(first) == 0 {
		return "Personal Team"
	}
	return first[0] + "'s Team"
}
