package service

import (
	"context"

	"github.com/Freeeeeet/tutor_market/internal/model"
)

// Интерфейсы хранилищ, которые нужны сервисам. Реализуются
// репозиториями на pgx, в тестах подменяются фейками в памяти.

type TeacherStore interface {
	GetByID(ctx context.Context, id int64) (*model.Teacher, error)
	ListRandom(ctx context.Context, n int) ([]*model.Teacher, error)
	ListAll(ctx context.Context) ([]*model.Teacher, error)
	ListByGoalID(ctx context.Context, goalID int64) ([]*model.Teacher, error)
}

type GoalStore interface {
	GetByKey(ctx context.Context, key string) (*model.Goal, error)
	ListAll(ctx context.Context) ([]*model.Goal, error)
	ListByTeacherID(ctx context.Context, teacherID int64) ([]*model.Goal, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	ExistsForSlot(ctx context.Context, teacherID int64, day, time string) (bool, error)
}

type RequestStore interface {
	Create(ctx context.Context, request *model.Request) error
}

// TeacherFinder достаточно сервису бронирований: ему нужна только
// проверка что учитель из формы существует
type TeacherFinder interface {
	GetByID(ctx context.Context, id int64) (*model.Teacher, error)
}
