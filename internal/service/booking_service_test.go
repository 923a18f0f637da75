package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/tutor_market/internal/catalog"
	"github.com/Freeeeeet/tutor_market/internal/form"
	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDays = catalog.Days{
	"mon": "Понедельник",
	"tue": "Вторник",
}

func newTestBookingService(bookings *fakeBookingStore, uniqueSlots bool) *BookingService {
	teachers := &fakeTeacherStore{teachers: map[int64]*model.Teacher{
		1: {ID: 1, Name: "Elizabeth Pratt", Free: model.FreeSchedule{"mon": {10, 11, 14}}},
	}}
	return NewBookingService(bookings, teachers, testDays, uniqueSlots, zap.NewNop())
}

func validBooking() form.BookingSubmission {
	return form.BookingSubmission{
		Name:    "Анна",
		Phone:   "+7 900 123-45-67",
		Teacher: 1,
		Weekday: "mon",
		Time:    "14:00",
	}
}

func TestIsSlotAvailable(t *testing.T) {
	s := newTestBookingService(&fakeBookingStore{}, false)
	teacher := &model.Teacher{ID: 1, Free: model.FreeSchedule{"mon": {10, 11}}}

	free, err := s.IsSlotAvailable(teacher, "mon", 10)
	require.NoError(t, err)
	assert.True(t, free)

	free, err = s.IsSlotAvailable(teacher, "mon", 9)
	require.NoError(t, err)
	assert.False(t, free)

	// день есть в каталоге, но отсутствует в расписании учителя
	free, err = s.IsSlotAvailable(teacher, "tue", 10)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestIsSlotAvailable_InvalidDay(t *testing.T) {
	s := newTestBookingService(&fakeBookingStore{}, false)
	teacher := &model.Teacher{ID: 1, Free: model.FreeSchedule{"mon": {10}}}

	_, err := s.IsSlotAvailable(teacher, "someday", 10)
	require.ErrorIs(t, err, ErrInvalidDay)
}

func TestSubmit_CreatesBooking(t *testing.T) {
	store := &fakeBookingStore{}
	s := newTestBookingService(store, false)

	booking, errs, err := s.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	require.Empty(t, errs)

	require.Len(t, store.created, 1)
	assert.Equal(t, "14:00", booking.Time)
	assert.Equal(t, "mon", booking.Day)
	assert.Equal(t, int64(1), booking.TeacherID)
	assert.Equal(t, "Анна", booking.Name)
	assert.NotEmpty(t, booking.Ref)
}

func TestSubmit_InvalidFormDoesNotPersist(t *testing.T) {
	store := &fakeBookingStore{}
	s := newTestBookingService(store, false)

	sub := validBooking()
	sub.Name = ""

	booking, errs, err := s.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, "Нужно ввести свое имя", errs["client_name"])
	assert.Empty(t, store.created)
}

// Скрытое поле с учителем может содержать что угодно: несуществующий
// id - ошибка поля формы, а не 500 от нарушения foreign key.
func TestSubmit_UnknownTeacher(t *testing.T) {
	store := &fakeBookingStore{}
	s := newTestBookingService(store, false)

	sub := validBooking()
	sub.Teacher = 999999

	booking, errs, err := s.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, "Преподаватель не найден", errs["client_teacher"])
	assert.Empty(t, store.created)
}

func TestSubmit_UniqueSlotsRejectsTakenSlot(t *testing.T) {
	store := &fakeBookingStore{taken: true}
	s := newTestBookingService(store, true)

	booking, errs, err := s.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, "Это время уже занято", errs["client_time"])
	assert.Empty(t, store.created)
}

// Повторное бронирование того же слота проходит, пока UNIQUE_SLOTS
// не включён
func TestSubmit_DuplicateSlotAllowedByDefault(t *testing.T) {
	store := &fakeBookingStore{taken: true}
	s := newTestBookingService(store, false)

	_, errs, err := s.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	require.Empty(t, errs)

	_, errs, err = s.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Len(t, store.created, 2)
}
