package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CurrentTeam returns the identity's current team or a forbidden error when
// none is selected.
func (s *BaseService) CurrentTeam(ctx context.Context, identity *domain.Identity) (string, error) {
	teamID, ok := identity.CurrentTeam()
	if !ok {
		err := fmt.Errorf("%w: no current team selected", apperrors.ErrForbidden)
		userID := ""
		if identity != nil {
			userID = identity.UserID
		}
		s.LogDebug(ctx, "Request requires a current team", slog.String("user_id", userID))
		return "", err
	}
	return teamID, nil
}
