package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hammondstays/hotels-api/internal/api/metrics"
	"github.com/hammondstays/hotels-api/internal/core/domain"
	"github.com/hammondstays/hotels-api/internal/core/ports"
)

// HotelService orchestrates validation, authorization, and persistence for
// hotel mutations. Order per request is fixed: validation first, then the
// policy, then exactly one repository write.
type HotelService struct {
	repo   ports.HotelRepository
	logger zerolog.Logger
}

func NewHotelService(repo ports.HotelRepository, logger zerolog.Logger) *HotelService {
	return &HotelService{repo: repo, logger: logger}
}

func (s *HotelService) ListHotels(ctx context.Context) ([]ports.HotelSummary, error) {
	hotels, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	summaries := make([]ports.HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		summaries = append(summaries, summarize(h))
	}
	return summaries, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id int64) (*ports.HotelSummary, error) {
	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := summarize(*hotel)
	return &summary, nil
}

// CreateHotel validates the input and persists a new hotel. Endpoint-level
// RBAC already restricts callers; the caller set is logged for audit only.
func (s *HotelService) CreateHotel(ctx context.Context, in ports.HotelInput, caller domain.RoleSet) (*ports.HotelDetail, error) {
	hotel := &domain.Hotel{
		Name:      in.Name,
		Address:   in.Address,
		ManagerID: in.ManagerID,
	}
	if err := hotel.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, hotel)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create hotel")
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	metrics.HotelsCreatedTotal.Inc()
	s.logger.Info().Int64("hotel_id", created.ID).Strs("caller_roles", caller.Names()).Msg("hotel created")

	detail := detail(*created)
	return &detail, nil
}

// UpdateHotel applies an all-or-nothing update: when the manager change is
// denied nothing is written, including name and address. Only Admin callers
// have the requested manager assignment persisted.
func (s *HotelService) UpdateHotel(ctx context.Context, id int64, in ports.HotelInput, caller domain.RoleSet) (*ports.HotelDetail, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := domain.Hotel{
		ID:        id,
		Name:      in.Name,
		Address:   in.Address,
		ManagerID: in.ManagerID,
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if !domain.CanChangeManager(caller, current.ManagerID, in.ManagerID) {
		return nil, fmt.Errorf("%w: insufficient permission to alter manager assignment", domain.ErrForbidden)
	}
	updated.ManagerID = domain.ApplyManagerChange(caller, current.ManagerID, in.ManagerID)

	if err := s.repo.Update(ctx, &updated); err != nil {
		s.logger.Error().Err(err).Int64("hotel_id", id).Msg("failed to update hotel")
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	s.logger.Info().Int64("hotel_id", id).Strs("caller_roles", caller.Names()).Msg("hotel updated")

	d := detail(updated)
	return &d, nil
}

// DeleteHotel removes a hotel. Admin only; the policy runs after the
// existence check so absent rows report NotFound, not Forbidden.
func (s *HotelService) DeleteHotel(ctx context.Context, id int64, caller domain.RoleSet) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if !domain.CanDelete(caller) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("hotel_id", id).Msg("failed to delete hotel")
		return fmt.Errorf("delete hotel: %w", err)
	}

	metrics.HotelsDeletedTotal.Inc()
	s.logger.Info().Int64("hotel_id", id).Msg("hotel deleted")
	return nil
}

func summarize(h domain.Hotel) ports.HotelSummary {
	return ports.HotelSummary{ID: h.ID, Name: h.Name, Address: h.Address}
}

func detail(h domain.Hotel) ports.HotelDetail {
	return ports.HotelDetail{ID: h.ID, Name: h.Name, Address: h.Address, ManagerID: h.ManagerID}
}
