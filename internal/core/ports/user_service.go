package ports

import "context"

// CreateUserInput carries the fields for user provisioning. Every listed
// role must already exist in the role catalog.
type CreateUserInput struct {
	Username string
	Password string
	Roles    []string
}

type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*UserView, error)
	ListUsers(ctx context.Context) ([]UserView, error)
}
