package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

func TestUserService_CreateUser(t *testing.T) {
	repo := newStubIdentityRepo()
	_ = repo.CreateRole(context.Background(), "Admin")
	_ = repo.CreateRole(context.Background(), "User")
	svc := NewUserService(repo, zerolog.Nop())

	view, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol",
		Password: "S3cret!pw",
		Roles:    []string{"User"},
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if view.Username != "carol" || len(view.Roles) != 1 || view.Roles[0] != "User" {
		t.Fatalf("unexpected view: %+v", view)
	}

	stored, err := repo.FindUserByUsername(context.Background(), "carol")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "S3cret!pw" {
		t.Fatalf("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("S3cret!pw")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_CreateUser_NoRoles(t *testing.T) {
	svc := NewUserService(newStubIdentityRepo(), zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{Username: "carol", Password: "pw123456"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_CreateUser_UnknownRole(t *testing.T) {
	repo := newStubIdentityRepo()
	_ = repo.CreateRole(context.Background(), "User")
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol",
		Password: "pw123456",
		Roles:    []string{"Overlord"},
	})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if _, err := repo.FindUserByUsername(context.Background(), "carol"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user must not be created when a role is unknown")
	}
}

func TestUserService_CreateUser_UsernameTaken(t *testing.T) {
	repo := newStubIdentityRepo()
	_ = repo.CreateRole(context.Background(), "User")
	svc := NewUserService(repo, zerolog.Nop())

	in := ports.CreateUserInput{Username: "carol", Password: "pw123456", Roles: []string{"User"}}
	if _, err := svc.CreateUser(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newStubIdentityRepo()
	_ = repo.CreateRole(context.Background(), "Admin")
	_ = repo.CreateRole(context.Background(), "User")
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.CreateUser(context.Background(), ports.CreateUserInput{Username: "carol", Password: "pw123456", Roles: []string{"User"}})
	_, _ = svc.CreateUser(context.Background(), ports.CreateUserInput{Username: "dave", Password: "pw123456", Roles: []string{"Admin", "User"}})

	views, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 users, got %d", len(views))
	}
	byName := make(map[string][]string, len(views))
	for _, v := range views {
		byName[v.Username] = v.Roles
	}
	if len(byName["dave"]) != 2 {
		t.Fatalf("dave should carry two roles, got %v", byName["dave"])
	}
}
