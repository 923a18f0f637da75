package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/tutor_market/internal/model"
)

// Фейковые хранилища в памяти для тестов сервисов.

type fakeTeacherStore struct {
	teachers map[int64]*model.Teacher
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id int64) (*model.Teacher, error) {
	return f.teachers[id], nil
}

func (f *fakeTeacherStore) ListRandom(_ context.Context, n int) ([]*model.Teacher, error) {
	var teachers []*model.Teacher
	for _, t := range f.teachers {
		if len(teachers) == n {
			break
		}
		teachers = append(teachers, t)
	}
	return teachers, nil
}

func (f *fakeTeacherStore) ListAll(_ context.Context) ([]*model.Teacher, error) {
	var teachers []*model.Teacher
	for _, t := range f.teachers {
		teachers = append(teachers, t)
	}
	return teachers, nil
}

func (f *fakeTeacherStore) ListByGoalID(_ context.Context, _ int64) ([]*model.Teacher, error) {
	return nil, nil
}

type fakeGoalStore struct {
	goals []*model.Goal

	// имитирует удаление цели между валидацией и записью заявки
	hideOnGet bool
}

func (f *fakeGoalStore) GetByKey(_ context.Context, key string) (*model.Goal, error) {
	if f.hideOnGet {
		return nil, nil
	}
	for _, g := range f.goals {
		if g.Key == key {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGoalStore) ListAll(_ context.Context) ([]*model.Goal, error) {
	return f.goals, nil
}

func (f *fakeGoalStore) ListByTeacherID(_ context.Context, _ int64) ([]*model.Goal, error) {
	return f.goals, nil
}

type fakeBookingStore struct {
	created []*model.Booking
	taken   bool
}

func (f *fakeBookingStore) Create(_ context.Context, booking *model.Booking) error {
	booking.ID = int64(len(f.created) + 1)
	booking.CreatedAt = time.Now()
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingStore) ExistsForSlot(_ context.Context, _ int64, _, _ string) (bool, error) {
	return f.taken, nil
}

type fakeRequestStore struct {
	created []*model.Request
}

func (f *fakeRequestStore) Create(_ context.Context, request *model.Request) error {
	request.ID = int64(len(f.created) + 1)
	request.CreatedAt = time.Now()
	f.created = append(f.created, request)
	return nil
}
