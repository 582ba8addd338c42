package domain

import (
	"errors"
	"strings"
)

// Role is the closed catalog of authorization roles. Comparison is
// case-insensitive; ParseRole is the only way strings enter the catalog.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUsernameTaken = errors.New("username already exists")
var ErrRoleNotFound = errors.New("role does not exist")
var ErrRoleExists = errors.New("role already exists")

// ParseRole maps a stored or submitted role name onto the catalog.
func ParseRole(name string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admin":
		return RoleAdmin, true
	case "manager":
		return RoleManager, true
	case "user":
		return RoleUser, true
	}
	return "", false
}

// RoleSet is the caller's capability set, built once from session claims and
// consulted by the authorization policy.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from role names, dropping anything outside the
// catalog.
func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, n := range names {
		if r, ok := ParseRole(n); ok {
			set[r] = struct{}{}
		}
	}
	return set
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// HasAny reports whether the set contains at least one of the given roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Names returns the contained role names in catalog order.
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range []Role{RoleAdmin, RoleManager, RoleUser} {
		if s.Has(r) {
			names = append(names, string(r))
		}
	}
	return names
}

// User models an authenticated actor. PasswordHash never leaves the process.
type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"roles"`
}
