package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeacherRepository struct {
	pool *pgxpool.Pool
}

func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

// Create создаёт учителя (используется сидером)
func (r *TeacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	free, err := teacher.Free.Encode()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO teachers (name, about, rating, picture, price, free)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err = r.pool.QueryRow(
		ctx, query,
		teacher.Name,
		teacher.About,
		teacher.Rating,
		teacher.Picture,
		teacher.Price,
		free,
	).Scan(&teacher.ID, &teacher.CreatedAt)

	if err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}

	return nil
}

// GetByID получает учителя по ID вместе с раскодированным расписанием
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	query := `
		SELECT id, name, about, rating, picture, price, free, created_at
		FROM teachers
		WHERE id = $1
	`

	var teacher model.Teacher
	var free []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.About,
		&teacher.Rating,
		&teacher.Picture,
		&teacher.Price,
		&free,
		&teacher.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get teacher by id: %w", err)
	}

	teacher.Free, err = model.DecodeFreeSchedule(free)
	if err != nil {
		return nil, fmt.Errorf("teacher %d: %w", id, err)
	}

	return &teacher, nil
}

// ListRandom получает до n учителей в случайном порядке (для главной)
func (r *TeacherRepository) ListRandom(ctx context.Context, n int) ([]*model.Teacher, error) {
	query := `
		SELECT id, name, about, rating, picture, price
		FROM teachers
		ORDER BY random()
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("list random teachers: %w", err)
	}
	defer rows.Close()

	return scanTeacherSummaries(rows)
}

// ListAll получает всех учителей без расписания (для страницы со всеми)
func (r *TeacherRepository) ListAll(ctx context.Context) ([]*model.Teacher, error) {
	query := `
		SELECT id, name, about, rating, picture, price
		FROM teachers
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all teachers: %w", err)
	}
	defer rows.Close()

	return scanTeacherSummaries(rows)
}

// ListByGoalID получает всех учителей с данной целью через явный join
func (r *TeacherRepository) ListByGoalID(ctx context.Context, goalID int64) ([]*model.Teacher, error) {
	query := `
		SELECT t.id, t.name, t.about, t.rating, t.picture, t.price
		FROM teachers t
		JOIN teacher_goals tg ON tg.teacher_id = t.id
		WHERE tg.goal_id = $1
		ORDER BY t.id
	`

	rows, err := r.pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("list teachers by goal: %w", err)
	}
	defer rows.Close()

	return scanTeacherSummaries(rows)
}

// AddGoal связывает учителя с целью
func (r *TeacherRepository) AddGoal(ctx context.Context, teacherID, goalID int64) error {
	query := `
		INSERT INTO teacher_goals (teacher_id, goal_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, teacherID, goalID)
	if err != nil {
		return fmt.Errorf("add teacher goal: %w", err)
	}

	return nil
}

// scanTeacherSummaries читает строки без колонок free и created_at
func scanTeacherSummaries(rows pgx.Rows) ([]*model.Teacher, error) {
	var teachers []*model.Teacher
	for rows.Next() {
		var teacher model.Teacher
		err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.About,
			&teacher.Rating,
			&teacher.Picture,
			&teacher.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teachers: %w", err)
	}

	return teachers, nil
}
