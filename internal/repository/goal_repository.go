package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalRepository struct {
	pool *pgxpool.Pool
}

func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

// Create создаёт цель (используется сидером)
func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `
		INSERT INTO goals (key, title)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, goal.Key, goal.Title).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	return nil
}

// GetByKey получает цель по слагу
func (r *GoalRepository) GetByKey(ctx context.Context, key string) (*model.Goal, error) {
	query := `
		SELECT id, key, title
		FROM goals
		WHERE key = $1
	`

	var goal model.Goal
	err := r.pool.QueryRow(ctx, query, key).Scan(&goal.ID, &goal.Key, &goal.Title)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal by key: %w", err)
	}

	return &goal, nil
}

// ListAll получает все цели
func (r *GoalRepository) ListAll(ctx context.Context) ([]*model.Goal, error) {
	query := `
		SELECT id, key, title
		FROM goals
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*model.Goal
	for rows.Next() {
		var goal model.Goal
		if err := rows.Scan(&goal.ID, &goal.Key, &goal.Title); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, &goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}

	return goals, nil
}

// ListByTeacherID получает цели учителя через явный join
func (r *GoalRepository) ListByTeacherID(ctx context.Context, teacherID int64) ([]*model.Goal, error) {
	query := `
		SELECT g.id, g.key, g.title
		FROM goals g
		JOIN teacher_goals tg ON tg.goal_id = g.id
		WHERE tg.teacher_id = $1
		ORDER BY g.id
	`

	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list goals by teacher: %w", err)
	}
	defer rows.Close()

	var goals []*model.Goal
	for rows.Next() {
		var goal model.Goal
		if err := rows.Scan(&goal.ID, &goal.Key, &goal.Title); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, &goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}

	return goals, nil
}
