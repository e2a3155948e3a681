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
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/utils"
	"github.com/google/uuid"
)

const emailTakenMessage = "has already been taken"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	teamSvc  portssvc.TeamSvcFacade
}

// NewUserService creates a user service. New users get a personal team from teamSvc.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, teamSvc portssvc.TeamSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		teamSvc:  teamSvc,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	errs := apperrors.FieldErrors{}
	if name == "" {
		errs.Add("name", "is required")
	}
	if email == "" {
		errs.Add("email", "is required")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewFieldError("email", emailTakenMessage)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing email")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.NewFieldError("password", "must be at most 72 bytes")
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := newUser(name, email, domain.ProviderLocal, nil)
	user.PasswordHash = hash
	return s.createWithTeam(ctx, user)
}

func (s *userService) createWithTeam(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewFieldError("email", emailTakenMessage)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, err
	}
	if _, err := s.teamSvc.CreatePersonalTeam(ctx, &user); err != nil {
		s.LogError(ctx, err, "Failed to create personal team", slog.String("user_id", user.UserID))
		return nil, err
	}
	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("provider", string(user.AuthProvider)))
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) FindOrCreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up provider user", slog.String("provider", string(provider)))
		return nil, err
	}

	email = normalizeEmail(email)
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.userRepo.LinkProvider(ctx, user.UserID, provider, providerUserID); err != nil {
			s.LogError(ctx, err, "Failed to link provider", slog.String("user_id", user.UserID))
			return nil, err
		}
		user.AuthProvider = provider
		user.ProviderUserID = &providerUserID
		return user, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		name = email
	}
	return s.createWithTeam(ctx, newUser(strings.TrimSpace(name), email, provider, &providerUserID))
}

func newUser(name, email string, provider domain.AuthProvider, providerUserID *string) domain.User {
	now := time.Now().UTC()
	userID := uuid.NewString()
	return domain.User{
		UserID:         userID,
		Name:           name,
		Email:          email,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}
