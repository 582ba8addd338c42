package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// UserService provisions users through the identity repository.
type UserService struct {
	identity ports.IdentityRepository
	logger   zerolog.Logger
}

func NewUserService(identity ports.IdentityRepository, logger zerolog.Logger) *UserService {
	return &UserService{identity: identity, logger: logger}
}

// CreateUser creates a user and attaches the requested roles. Every role
// must already exist in the catalog; the username must be free.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*ports.UserView, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if len(in.Roles) == 0 {
		return nil, fmt.Errorf("%w: at least one role must be provided", domain.ErrValidation)
	}

	for _, role := range in.Roles {
		exists, err := s.identity.RoleExists(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("check role %q: %w", role, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %q", domain.ErrRoleNotFound, role)
		}
	}

	if _, err := s.identity.FindUserByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.identity.CreateUser(ctx, in.Username, string(hash))
	if err != nil {
		return nil, err
	}

	attached := make([]string, 0, len(in.Roles))
	for _, role := range in.Roles {
		if err := s.identity.AddRoleToUser(ctx, user.ID, role); err != nil {
			s.logger.Error().Err(err).Str("username", in.Username).Str("role", role).Msg("failed to attach role")
			continue
		}
		attached = append(attached, role)
	}

	s.logger.Info().Str("username", user.Username).Strs("roles", attached).Msg("user created")

	return &ports.UserView{ID: user.ID, Username: user.Username, Roles: attached}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]ports.UserView, error) {
	users, err := s.identity.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	views := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, ports.UserView{ID: u.ID, Username: u.Username, Roles: u.Roles})
	}
	return views, nil
}
