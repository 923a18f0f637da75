package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

// Create создаёт новую заявку на подбор преподавателя
func (r *RequestRepository) Create(ctx context.Context, request *model.Request) error {
	query := `
		INSERT INTO requests (ref, name, phone, time, goal_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		request.Ref,
		request.Name,
		request.Phone,
		request.Time,
		request.GoalID,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return nil
}
