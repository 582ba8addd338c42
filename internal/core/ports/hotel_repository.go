package ports

import (
	"context"

	"github.com/hammondstays/hotels-api/internal/core/domain"
)

// HotelRepository defines the relational persistence operations for hotels.
type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
