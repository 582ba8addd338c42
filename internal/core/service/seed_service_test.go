package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hammondstays/hotels-api/internal/core/domain"
)

func countSeeded(t *testing.T, identity *stubIdentityRepo, hotels *stubHotelRepo) (roles, users, hotelRows int) {
	t.Helper()
	hs, err := hotels.List(context.Background())
	if err != nil {
		t.Fatalf("list hotels: %v", err)
	}
	return len(identity.roles), len(identity.users), len(hs)
}

func TestSeeder_Idempotent(t *testing.T) {
	identity := newStubIdentityRepo()
	hotels := newStubHotelRepo()
	seeder := NewSeeder(identity, hotels, zerolog.Nop())

	for run := 1; run <= 3; run++ {
		if err := seeder.Run(context.Background()); err != nil {
			t.Fatalf("run %d failed: %v", run, err)
		}
		roles, users, hotelRows := countSeeded(t, identity, hotels)
		if roles != 2 {
			t.Fatalf("run %d: expected 2 roles, got %d", run, roles)
		}
		if users != 3 {
			t.Fatalf("run %d: expected 3 users, got %d", run, users)
		}
		if hotelRows != 6 {
			t.Fatalf("run %d: expected 6 hotels, got %d", run, hotelRows)
		}
	}
}

func TestSeeder_RolesAttached(t *testing.T) {
	identity := newStubIdentityRepo()
	seeder := NewSeeder(identity, newStubHotelRepo(), zerolog.Nop())

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	expected := map[string]string{"galkadi": "Admin", "bob": "User", "sue": "User"}
	for username, role := range expected {
		user, err := identity.FindUserByUsername(context.Background(), username)
		if err != nil {
			t.Fatalf("%s not seeded: %v", username, err)
		}
		roles, _ := identity.RolesForUser(context.Background(), user.ID)
		if len(roles) != 1 || roles[0] != role {
			t.Fatalf("%s: expected role %s, got %v", username, role, roles)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password123!")); err != nil {
			t.Fatalf("%s: seeded password mismatch: %v", username, err)
		}
	}
}

func TestSeeder_SkipsHotelsWhenNotEmpty(t *testing.T) {
	identity := newStubIdentityRepo()
	hotels := newStubHotelRepo()
	if _, err := hotels.Create(context.Background(), &domain.Hotel{Name: "Existing", Address: "somewhere"}); err != nil {
		t.Fatalf("precreate hotel: %v", err)
	}

	seeder := NewSeeder(identity, hotels, zerolog.Nop())
	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	hs, _ := hotels.List(context.Background())
	if len(hs) != 1 {
		t.Fatalf("hotel seeding must be skipped entirely, got %d rows", len(hs))
	}
}

func TestSeeder_ExistingSeedDataUntouched(t *testing.T) {
	identity := newStubIdentityRepo()
	_ = identity.CreateRole(context.Background(), "Admin")
	hash, _ := bcrypt.GenerateFromPassword([]byte("DifferentPw1!"), bcrypt.MinCost)
	existing, _ := identity.CreateUser(context.Background(), "bob", string(hash))

	seeder := NewSeeder(identity, newStubHotelRepo(), zerolog.Nop())
	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// bob pre-existed; the seeder must not overwrite his credential.
	user, _ := identity.FindUserByUsername(context.Background(), "bob")
	if user.ID != existing.ID {
		t.Fatalf("bob was recreated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("DifferentPw1!")); err != nil {
		t.Fatalf("existing password was overwritten: %v", err)
	}
}
