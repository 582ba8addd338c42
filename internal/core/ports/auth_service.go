package ports

import "context"

// UserView is the boundary shape for an authenticated user.
type UserView struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// AuthService orchestrates credential verification and session lifecycle.
// Sessions are opaque ids; cookie handling stays at the transport layer.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*UserView, string, error)
	CurrentUser(ctx context.Context, sessionID string) (*UserView, error)
	Logout(ctx context.Context, sessionID string) error
}
