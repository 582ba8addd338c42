package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hammondstays/hotels-api/internal/api/metrics"
	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// AuthService implements login, logout, and current-user lookup on top of
// the identity repository and an opaque session store.
type AuthService struct {
	identity ports.IdentityRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(identity ports.IdentityRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{identity: identity, sessions: sessions, logger: logger}
}

// Login verifies credentials and issues a session. Lookup failure and a bad
// password collapse into the same error so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.UserView, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.identity.FindUserByUsername(ctx, username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	roles, err := s.identity.RolesForUser(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("load roles: %w", err)
	}

	sessionID, err := s.sessions.Create(ctx, ports.SessionData{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roles,
	})
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("user logged in")

	return &ports.UserView{ID: user.ID, Username: user.Username, Roles: roles}, sessionID, nil
}

// CurrentUser resolves the session id to the logged-in user view.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*ports.UserView, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthenticated
	}

	data, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &ports.UserView{ID: data.UserID, Username: data.Username, Roles: data.Roles}, nil
}

// Logout destroys the session. Calling it without a live session is not an
// error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
