package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hammondstays/hotels-api/internal/api/metrics"
	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

const (
	seedPassword     = "Password123!"
	seedHotelCount   = 6
	seedHotelAddress = "1234 Place st"
)

// roleCatalog is the fixed role catalog provisioned at startup. Manager is a
// recognized role but not seeded; it only exists when created via /users.
var roleCatalog = []domain.Role{domain.RoleAdmin, domain.RoleUser}

type seedUser struct {
	username string
	role     domain.Role
}

var demoUsers = []seedUser{
	{username: "galkadi", role: domain.RoleAdmin},
	{username: "bob", role: domain.RoleUser},
	{username: "sue", role: domain.RoleUser},
}

// Seeder provisions baseline roles, users, and hotels on startup. Run is
// idempotent: existing entities are skipped, and per-entity failures are
// logged without aborting the rest (best-effort semantics). Concurrent runs
// rely on the store's unique constraints as the backstop; a constraint
// violation is treated as already seeded.
type Seeder struct {
	identity ports.IdentityRepository
	hotels   ports.HotelRepository
	logger   zerolog.Logger
}

func NewSeeder(identity ports.IdentityRepository, hotels ports.HotelRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{identity: identity, hotels: hotels, logger: logger}
}

// Run executes the full seeding pass: roles, then users, then hotels.
func (s *Seeder) Run(ctx context.Context) error {
	s.seedRoles(ctx)
	s.seedUsers(ctx)
	if err := s.seedHotels(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) {
	for _, role := range roleCatalog {
		exists, err := s.identity.RoleExists(ctx, string(role))
		if err != nil {
			s.logger.Error().Err(err).Str("role", string(role)).Msg("seed: role lookup failed")
			continue
		}
		if exists {
			continue
		}

		if err := s.identity.CreateRole(ctx, string(role)); err != nil {
			// A conflict means another instance seeded first.
			if !errors.Is(err, domain.ErrRoleExists) {
				s.logger.Error().Err(err).Str("role", string(role)).Msg("seed: role creation failed")
			}
			continue
		}
		metrics.SeedEntitiesTotal.WithLabelValues("role").Inc()
		s.logger.Info().Str("role", string(role)).Msg("seed: role created")
	}
}

func (s *Seeder) seedUsers(ctx context.Context) {
	for _, su := range demoUsers {
		if _, err := s.identity.FindUserByUsername(ctx, su.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Str("username", su.username).Msg("seed: user lookup failed")
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error().Err(err).Str("username", su.username).Msg("seed: password hash failed")
			continue
		}

		user, err := s.identity.CreateUser(ctx, su.username, string(hash))
		if err != nil {
			if !errors.Is(err, domain.ErrUsernameTaken) {
				s.logger.Error().Err(err).Str("username", su.username).Msg("seed: user creation failed")
			}
			continue
		}

		if err := s.identity.AddRoleToUser(ctx, user.ID, string(su.role)); err != nil {
			s.logger.Error().Err(err).Str("username", su.username).Str("role", string(su.role)).Msg("seed: role attach failed")
			continue
		}
		metrics.SeedEntitiesTotal.WithLabelValues("user").Inc()
		s.logger.Info().Str("username", su.username).Str("role", string(su.role)).Msg("seed: user created")
	}
}

// seedHotels inserts the demo hotels only when the table is empty; a single
// pre-existing row disables hotel seeding entirely.
func (s *Seeder) seedHotels(ctx context.Context) error {
	count, err := s.hotels.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count hotels: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := 0; i < seedHotelCount; i++ {
		hotel := &domain.Hotel{
			Name:    fmt.Sprintf("Hammond %d", i),
			Address: seedHotelAddress,
		}
		if _, err := s.hotels.Create(ctx, hotel); err != nil {
			s.logger.Error().Err(err).Str("name", hotel.Name).Msg("seed: hotel creation failed")
			continue
		}
		metrics.SeedEntitiesTotal.WithLabelValues("hotel").Inc()
	}

	s.logger.Info().Int("count", seedHotelCount).Msg("seed: hotels created")
	return nil
}
