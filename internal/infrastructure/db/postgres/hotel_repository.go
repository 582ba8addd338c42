package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hammondstays/hotels-api/internal/core/domain"
)

// HotelRepository implements hotel persistence on PostgreSQL.
type HotelRepository struct {
	pool *pgxpool.Pool
}

func NewHotelRepository(pool *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{pool: pool}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address, manager_id FROM hotels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r *HotelRepository) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, address, manager_id FROM hotels WHERE id = $1`, id)
	h, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return &h, nil
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	created := *hotel
	err := r.pool.QueryRow(ctx,
		`INSERT INTO hotels (name, address, manager_id) VALUES ($1, $2, $3) RETURNING id`,
		hotel.Name, hotel.Address, managerParam(hotel.ManagerID),
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}
	return &created, nil
}

func (r *HotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE hotels SET name = $2, address = $3, manager_id = $4 WHERE id = $1`,
		hotel.ID, hotel.Name, hotel.Address, managerParam(hotel.ManagerID),
	)
	if err != nil {
		return fmt.Errorf("update hotel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count hotels: %w", err)
	}
	return n, nil
}

func scanHotel(row pgx.Row) (domain.Hotel, error) {
	var (
		h   domain.Hotel
		mid pgtype.Int8
	)
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &mid); err != nil {
		return domain.Hotel{}, err
	}
	if mid.Valid {
		v := mid.Int64
		h.ManagerID = &v
	}
	return h, nil
}

func managerParam(id *int64) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *id, Valid: true}
}
