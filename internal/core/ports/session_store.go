package ports

import "context"

// SessionData is the server-side state attached to an opaque session id.
type SessionData struct {
	UserID   int64    `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// SessionStore persists sessions keyed by opaque id. Get returns
// domain.ErrUnauthenticated when the id is unknown or expired.
type SessionStore interface {
	Create(ctx context.Context, data SessionData) (string, error)
	Get(ctx context.Context, id string) (*SessionData, error)
	Delete(ctx context.Context, id string) error
}
