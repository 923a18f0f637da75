package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutor_market/internal/form"
	"github.com/Freeeeeet/tutor_market/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RequestService struct {
	requestRepo RequestStore
	goalRepo    GoalStore
	logger      *zap.Logger
}

func NewRequestService(
	requestRepo RequestStore,
	goalRepo GoalStore,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		goalRepo:    goalRepo,
		logger:      logger,
	}
}

// Choices получает актуальный список целей для вариантов формы
func (s *RequestService) Choices(ctx context.Context) ([]*model.Goal, error) {
	goals, err := s.goalRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

// Submit проверяет форму заявки и сохраняет заявку. Вариантом целей
// служит текущее содержимое таблицы goals, не снимок со старта.
// Возвращает заявку и выбранную цель для страницы подтверждения.
func (s *RequestService) Submit(ctx context.Context, sub form.RequestSubmission) (*model.Request, *model.Goal, form.Errors, error) {
	goals, err := s.goalRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list goals: %w", err)
	}

	errs := sub.Validate(goals)
	if len(errs) > 0 {
		return nil, nil, errs, nil
	}

	// Повторный поиск может не найти цель, если её удалили между
	// валидацией и записью. Тогда заявка сохраняется без цели.
	goal, err := s.goalRepo.GetByKey(ctx, sub.Goal)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get goal: %w", err)
	}

	request := &model.Request{
		Ref:   uuid.NewString(),
		Name:  sub.Name,
		Phone: sub.Phone,
		Time:  form.BucketValue(sub.Time),
	}
	if goal != nil {
		request.GoalID = &goal.ID
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, nil, nil, err
	}

	s.logger.Info("Request created",
		zap.Int64("request_id", request.ID),
		zap.String("goal", sub.Goal),
		zap.String("time", request.Time))

	return request, goal, nil, nil
}
