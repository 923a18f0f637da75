// Одноразовый импорт каталога целей и учителей из json-файлов в БД.
// Запускается один раз на пустой базе после миграций.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Freeeeeet/tutor_market/internal/app"
	"github.com/Freeeeeet/tutor_market/internal/config"
	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/Freeeeeet/tutor_market/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type seedTeacher struct {
	Name    string             `json:"name"`
	About   string             `json:"about"`
	Rating  float64            `json:"rating"`
	Picture string             `json:"picture"`
	Price   int                `json:"price"`
	Goals   []string           `json:"goals"`
	Free    model.FreeSchedule `json:"free"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create db pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	goalRepo := repository.NewGoalRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)

	goalIDs, err := seedGoals(ctx, goalRepo, "data/goals.json")
	if err != nil {
		logger.Fatal("Failed to seed goals", zap.Error(err))
	}
	logger.Info("Goals imported", zap.Int("count", len(goalIDs)))

	count, err := seedTeachers(ctx, teacherRepo, goalIDs, "data/teachers.json")
	if err != nil {
		logger.Fatal("Failed to seed teachers", zap.Error(err))
	}
	logger.Info("Teachers imported", zap.Int("count", count))
}

// seedGoals импортирует цели и возвращает соответствие слаг -> id
func seedGoals(ctx context.Context, repo *repository.GoalRepository, path string) (map[string]int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read goals file: %w", err)
	}

	var goals map[string]string
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("decode goals file: %w", err)
	}

	ids := make(map[string]int64, len(goals))
	for key, title := range goals {
		goal := &model.Goal{Key: key, Title: title}
		if err := repo.Create(ctx, goal); err != nil {
			return nil, err
		}
		ids[key] = goal.ID
	}

	return ids, nil
}

func seedTeachers(ctx context.Context, repo *repository.TeacherRepository, goalIDs map[string]int64, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read teachers file: %w", err)
	}

	var teachers []seedTeacher
	if err := json.Unmarshal(raw, &teachers); err != nil {
		return 0, fmt.Errorf("decode teachers file: %w", err)
	}

	for _, row := range teachers {
		teacher := &model.Teacher{
			Name:    row.Name,
			About:   row.About,
			Rating:  row.Rating,
			Picture: row.Picture,
			Price:   row.Price,
			Free:    row.Free,
		}
		if err := repo.Create(ctx, teacher); err != nil {
			return 0, err
		}

		for _, key := range row.Goals {
			goalID, ok := goalIDs[key]
			if !ok {
				return 0, fmt.Errorf("teacher %q references unknown goal %q", row.Name, key)
			}
			if err := repo.AddGoal(ctx, teacher.ID, goalID); err != nil {
				return 0, err
			}
		}
	}

	return len(teachers), nil
}
