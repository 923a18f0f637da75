package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/catalog"
	"github.com/Freeeeeet/tutor_market/internal/model"
	"go.uber.org/zap"
)

// MainSampleSize сколько случайных учителей показываем на главной
const MainSampleSize = 6

type TeacherService struct {
	teacherRepo TeacherStore
	goalRepo    GoalStore
	days        catalog.Days
	logger      *zap.Logger
}

func NewTeacherService(
	teacherRepo TeacherStore,
	goalRepo GoalStore,
	days catalog.Days,
	logger *zap.Logger,
) *TeacherService {
	return &TeacherService{
		teacherRepo: teacherRepo,
		goalRepo:    goalRepo,
		days:        days,
		logger:      logger,
	}
}

// Main собирает данные главной: случайная выборка учителей и все цели
func (s *TeacherService) Main(ctx context.Context) ([]*model.Teacher, []*model.Goal, error) {
	teachers, err := s.teacherRepo.ListRandom(ctx, MainSampleSize)
	if err != nil {
		return nil, nil, fmt.Errorf("sample teachers: %w", err)
	}

	goals, err := s.goalRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list goals: %w", err)
	}

	return teachers, goals, nil
}

// ByGoal получает цель по слагу и всех учителей с этой целью
func (s *TeacherService) ByGoal(ctx context.Context, goalKey string) (*model.Goal, []*model.Teacher, error) {
	goal, err := s.goalRepo.GetByKey(ctx, goalKey)
	if err != nil {
		return nil, nil, fmt.Errorf("get goal: %w", err)
	}

	if goal == nil {
		return nil, nil, fmt.Errorf("goal %q: %w", goalKey, ErrNotFound)
	}

	teachers, err := s.teacherRepo.ListByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("teachers by goal: %w", err)
	}

	return goal, teachers, nil
}

// All получает всех учителей без расписаний
func (s *TeacherService) All(ctx context.Context) ([]*model.Teacher, error) {
	teachers, err := s.teacherRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	return teachers, nil
}

// Profile получает учителя с раскодированным расписанием и его целями.
// Расписание с днём не из каталога - повреждение данных, отдаём ошибку
// наверх вместо тихого пропуска.
func (s *TeacherService) Profile(ctx context.Context, id int64) (*model.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}

	if teacher == nil {
		return nil, fmt.Errorf("teacher %d: %w", id, ErrNotFound)
	}

	for day := range teacher.Free {
		if !s.days.Has(day) {
			s.logger.Error("Free schedule references unknown day",
				zap.Int64("teacher_id", id),
				zap.String("day", day))
			return nil, fmt.Errorf("teacher %d: day %q: %w", id, day, model.ErrMalformedSchedule)
		}
	}

	teacher.Goals, err = s.goalRepo.ListByTeacherID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("teacher goals: %w", err)
	}

	return teacher, nil
}
