package ports

import (
	"context"

	"github.com/hammondstays/hotels-api/internal/core/domain"
)

// IdentityRepository defines the persistence operations of the identity
// store: users, roles, and their links. The hotel workflow never writes
// through this interface; it only reads manager ids by value.
type IdentityRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	RolesForUser(ctx context.Context, userID int64) ([]string, error)
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name string) error
	AddRoleToUser(ctx context.Context, userID int64, role string) error
}
