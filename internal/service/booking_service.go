package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/catalog"
	"github.com/Freeeeeet/tutor_market/internal/form"
	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService struct {
	bookingRepo BookingStore
	teacherRepo TeacherFinder
	days        catalog.Days
	uniqueSlots bool
	logger      *zap.Logger
}

func NewBookingService(
	bookingRepo BookingStore,
	teacherRepo TeacherFinder,
	days catalog.Days,
	uniqueSlots bool,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		teacherRepo: teacherRepo,
		days:        days,
		uniqueSlots: uniqueSlots,
		logger:      logger,
	}
}

// IsSlotAvailable проверяет что слот есть в свободном времени учителя.
// Проверка информационная: она решает показывать ли форму бронирования,
// но созданное бронирование слот не занимает.
func (s *BookingService) IsSlotAvailable(teacher *model.Teacher, day string, hour int) (bool, error) {
	if !s.days.Has(day) {
		return false, fmt.Errorf("day %q: %w", day, ErrInvalidDay)
	}

	return teacher.Free.HasSlot(day, hour), nil
}

// Submit проверяет форму бронирования и сохраняет бронирование.
// Ошибки валидации возвращаются второй величиной, форма при этом
// перерисовывается с сообщениями, в БД ничего не пишется.
func (s *BookingService) Submit(ctx context.Context, sub form.BookingSubmission) (*model.Booking, form.Errors, error) {
	errs := sub.Validate(s.days)
	if len(errs) > 0 {
		return nil, errs, nil
	}

	// Учитель приходит скрытым полем формы, подменить его в теле
	// запроса ничего не стоит. Несуществующий id - ошибка поля,
	// а не нарушение foreign key на вставке.
	teacher, err := s.teacherRepo.GetByID(ctx, sub.Teacher)
	if err != nil {
		return nil, nil, fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return nil, form.Errors{"client_teacher": "Преподаватель не найден"}, nil
	}

	if s.uniqueSlots {
		taken, err := s.bookingRepo.ExistsForSlot(ctx, sub.Teacher, sub.Weekday, sub.Time)
		if err != nil {
			return nil, nil, fmt.Errorf("check slot: %w", err)
		}
		if taken {
			return nil, form.Errors{"client_time": "Это время уже занято"}, nil
		}
	}

	booking := &model.Booking{
		Ref:       uuid.NewString(),
		Name:      sub.Name,
		Phone:     sub.Phone,
		Day:       sub.Weekday,
		Time:      sub.Time,
		TeacherID: sub.Teacher,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("teacher_id", booking.TeacherID),
		zap.String("day", booking.Day),
		zap.String("time", booking.Time))

	return booking, nil, nil
}
