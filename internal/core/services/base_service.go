package services

import (
	"context"
	"log/slog"

	"github.com/velstra/spendboard/internal/core/domain"
	portssvc "github.com/velstra/spendboard/internal/core/ports/services"
	"github.com/velstra/spendboard/internal/middleware"
)

// BaseService bundles the logging and authorization helpers shared by the
// domain services.
type BaseService struct {
	RoleAuthorizer portssvc.RoleAuthorizerSvc
}

// GetLogger returns the request-scoped logger from the context, falling back
// to the process default.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	return slog.Default()
}

// LogError logs msg at error level with the error attached first.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeRole checks if a user holds at least the required role
func (s *BaseService) AuthorizeRole(ctx context.Context, userID string, required domain.UserRole) error {
	if s.RoleAuthorizer != nil {
		return s.RoleAuthorizer.AuthorizeUserRole(ctx, userID, required)
	}
	// No authorizer wired; allow but leave a trace for development setups.
	s.LogDebug(ctx, "No role authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("required_role", string(required)))
	return nil
}
