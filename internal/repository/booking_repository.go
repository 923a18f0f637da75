package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create создаёт новое бронирование
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (ref, name, phone, day, time, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		booking.Ref,
		booking.Name,
		booking.Phone,
		booking.Day,
		booking.Time,
		booking.TeacherID,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// ExistsForSlot проверяет есть ли уже бронирование на этот слот.
// Используется только при включённом UNIQUE_SLOTS.
func (r *BookingRepository) ExistsForSlot(ctx context.Context, teacherID int64, day, time string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE teacher_id = $1 AND day = $2 AND time = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, teacherID, day, time).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check booking slot: %w", err)
	}

	return exists, nil
}
