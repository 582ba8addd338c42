package ports

import (
	"context"

	"github.com/hammondstays/hotels-api/internal/core/domain"
)

// HotelInput carries the mutable hotel fields submitted on create and update.
type HotelInput struct {
	Name      string
	Address   string
	ManagerID *int64
}

// HotelSummary is the public projection returned on the read path.
// ManagerID is intentionally absent from list/get responses.
type HotelSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// HotelDetail is the projection returned after a mutation; it includes the
// manager assignment so the caller can confirm what was persisted.
type HotelDetail struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID *int64 `json:"managerId"`
}

type HotelService interface {
	ListHotels(ctx context.Context) ([]HotelSummary, error)
	GetHotel(ctx context.Context, id int64) (*HotelSummary, error)
	CreateHotel(ctx context.Context, in HotelInput, caller domain.RoleSet) (*HotelDetail, error)
	UpdateHotel(ctx context.Context, id int64, in HotelInput, caller domain.RoleSet) (*HotelDetail, error)
	DeleteHotel(ctx context.Context, id int64, caller domain.RoleSet) error
}
