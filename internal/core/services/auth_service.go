package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/platform/config"
	"github.com/SscSPs/family_finance_tracker/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// ErrOAuthNotConfigured is returned by Google operations when client
// settings are missing.
var ErrOAuthNotConfigured = errors.New("google oauth is not configured")

// tokenService issues signed access tokens and rotating refresh tokens.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates a new refresh token for the given user. Only
// one refresh token is live per user, so issuing one rotates the last.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.NewRefreshToken(user.UserID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiresAt := time.Now().UTC().Add(s.cfg.RefreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(raw)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	user.RefreshTokenHash = hash
	user.RefreshTokenExpiresAt = &expiresAt
	return raw, expiresAt, nil
}

// ValidateAndParseRefreshToken checks the token against the stored hash and
// expiry of the user it names.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	userID, ok := utils.RefreshTokenUserID(refreshToken)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiresAt == nil {
		s.LogDebug(ctx, "No refresh token on record", slog.String("user_id", userID))
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiresAt) {
		s.LogDebug(ctx, "Refresh token expired", slog.String("user_id", userID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh token mismatch", slog.String("user_id", userID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if !s.cfg.GoogleOAuthEnabled() {
		return nil, ErrOAuthNotConfigured
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange oauth code")
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken checks the token signature and that its audience is
// this client.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if !s.cfg.GoogleOAuthEnabled() {
		return nil, ErrOAuthNotConfigured
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", err)
	}
	return payload, nil
}
