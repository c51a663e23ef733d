package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	apperrors "github.com/vitacart/storefront/pkg/errors"

	"github.com/vitacart/storefront/internal/repository"
)

// AuthConfig holds the provider portal credentials and login behavior.
type AuthConfig struct {
	Username string
	Password string

	// LoginDelay simulates the credential check round trip and applies to
	// failed attempts too, so timing does not leak whether the username
	// matched.
	LoginDelay time.Duration
}

// AuthService authenticates the single provider-portal account and tracks
// the per-session login flag.
type AuthService struct {
	sessions repository.SessionRepository
	cfg      AuthConfig
	logger   *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(sessions repository.SessionRepository, cfg AuthConfig, logger *slog.Logger) *AuthService {
	return &AuthService{sessions: sessions, cfg: cfg, logger: logger}
}

// Login checks the credentials and marks the session authenticated on
// success. Failures return a generic unauthorized error that does not reveal
// which credential was wrong.
func (s *AuthService) Login(ctx context.Context, sessionID, username, password string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if s.cfg.LoginDelay > 0 {
		time.Sleep(s.cfg.LoginDelay)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
	if !userOK || !passOK {
		s.logger.WarnContext(ctx, "login failed", slog.String("session_id", sessionID))
		return apperrors.Unauthorized("invalid username or password")
	}

	if err := s.sessions.SetAuthenticated(ctx, sessionID, true); err != nil {
		return apperrors.Wrap(err, "set session authenticated")
	}
	s.logger.InfoContext(ctx, "login succeeded", slog.String("session_id", sessionID))
	return nil
}

// Logout clears the session's login flag. Logging out a session that never
// logged in is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}
	if err := s.sessions.SetAuthenticated(ctx, sessionID, false); err != nil {
		return apperrors.Wrap(err, "clear session")
	}
	s.logger.InfoContext(ctx, "logout", slog.String("session_id", sessionID))
	return nil
}

// IsAuthenticated reports whether the session has logged in to the provider
// portal.
func (s *AuthService) IsAuthenticated(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	return s.sessions.IsAuthenticated(ctx, sessionID)
}
