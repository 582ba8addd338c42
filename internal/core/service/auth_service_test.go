package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

type stubIdentityRepo struct {
	users  map[string]*domain.User
	roles  map[string]struct{}
	links  map[int64][]string
	nextID int64
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{
		users:  make(map[string]*domain.User),
		roles:  make(map[string]struct{}),
		links:  make(map[int64][]string),
		nextID: 1,
	}
}

func (r *stubIdentityRepo) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubIdentityRepo) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	key := strings.ToLower(username)
	if _, ok := r.users[key]; ok {
		return nil, domain.ErrUsernameTaken
	}
	u := &domain.User{ID: r.nextID, Username: username, PasswordHash: passwordHash}
	r.nextID++
	r.users[key] = u
	clone := *u
	return &clone, nil
}

func (r *stubIdentityRepo) ListUsers(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		clone.Roles = append([]string(nil), r.links[u.ID]...)
		out = append(out, clone)
	}
	return out, nil
}

func (r *stubIdentityRepo) RolesForUser(_ context.Context, userID int64) ([]string, error) {
	return append([]string(nil), r.links[userID]...), nil
}

func (r *stubIdentityRepo) RoleExists(_ context.Context, name string) (bool, error) {
	_, ok := r.roles[strings.ToLower(name)]
	return ok, nil
}

func (r *stubIdentityRepo) CreateRole(_ context.Context, name string) error {
	key := strings.ToLower(name)
	if _, ok := r.roles[key]; ok {
		return domain.ErrRoleExists
	}
	r.roles[key] = struct{}{}
	return nil
}

func (r *stubIdentityRepo) AddRoleToUser(_ context.Context, userID int64, role string) error {
	if _, ok := r.roles[strings.ToLower(role)]; !ok {
		return domain.ErrRoleNotFound
	}
	r.links[userID] = append(r.links[userID], role)
	return nil
}

type stubSessionStore struct {
	sessions map[string]ports.SessionData
	nextID   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]ports.SessionData)}
}

func (s *stubSessionStore) Create(_ context.Context, data ports.SessionData) (string, error) {
	s.nextID++
	id := fmt.Sprintf("sess-%d", s.nextID)
	s.sessions[id] = data
	return id, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*ports.SessionData, error) {
	data, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	clone := data
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func seedLoginFixtures(t *testing.T, repo *stubIdentityRepo) {
	t.Helper()
	for _, role := range []string{"Admin", "User"} {
		if err := repo.CreateRole(context.Background(), role); err != nil {
			t.Fatalf("create role: %v", err)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	bob, err := repo.CreateUser(context.Background(), "bob", string(hash))
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := repo.AddRoleToUser(context.Background(), bob.ID, "User"); err != nil {
		t.Fatalf("attach role: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubIdentityRepo()
	seedLoginFixtures(t, repo)
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, zerolog.Nop())

	view, sessionID, err := svc.Login(context.Background(), "bob", "Password123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sessionID == "" {
		t.Fatalf("expected session id")
	}
	if view.Username != "bob" {
		t.Fatalf("unexpected username: %s", view.Username)
	}
	if len(view.Roles) != 1 || view.Roles[0] != "User" {
		t.Fatalf("expected roles [User], got %v", view.Roles)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubIdentityRepo()
	seedLoginFixtures(t, repo)
	svc := NewAuthService(repo, newStubSessionStore(), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "bob", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubIdentityRepo()
	seedLoginFixtures(t, repo)
	svc := NewAuthService(repo, newStubSessionStore(), zerolog.Nop())

	// Unknown user and bad password look identical to the caller.
	if _, _, err := svc.Login(context.Background(), "ghost", "Password123!"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newStubIdentityRepo()
	seedLoginFixtures(t, repo)
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, zerolog.Nop())

	_, sessionID, err := svc.Login(context.Background(), "bob", "Password123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	view, err := svc.CurrentUser(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if view.Username != "bob" {
		t.Fatalf("unexpected user: %+v", view)
	}

	if _, err := svc.CurrentUser(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for empty session, got %v", err)
	}
	if _, err := svc.CurrentUser(context.Background(), "sess-unknown"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for unknown session, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	repo := newStubIdentityRepo()
	seedLoginFixtures(t, repo)
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, zerolog.Nop())

	_, sessionID, _ := svc.Login(context.Background(), "bob", "Password123!")

	if err := svc.Logout(context.Background(), sessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.CurrentUser(context.Background(), sessionID); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("session should be gone after logout, got %v", err)
	}
	if err := svc.Logout(context.Background(), sessionID); err != nil {
		t.Fatalf("repeated logout must not fail: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without session must not fail: %v", err)
	}
}
