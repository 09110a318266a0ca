package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/nlp"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

type scheduleService struct {
	schedule repository.ScheduleRepo
}

func NewScheduleService(schedule repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedule: schedule}
}

func (s *scheduleService) Create(ctx context.Context, item *domain.ScheduleItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.UserID == "" {
		item.UserID = repository.DefaultUserID
	}
	if item.Type == "" {
		item.Type = domain.ScheduleReminder
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return err
	}
	return s.schedule.Create(ctx, item)
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	return s.schedule.GetByID(ctx, id)
}

func (s *scheduleService) List(ctx context.Context) ([]*domain.ScheduleItem, error) {
	return s.schedule.ListByUser(ctx, repository.DefaultUserID)
}

func (s *scheduleService) ListByDay(ctx context.Context, dayOfWeek string) ([]*domain.ScheduleItem, error) {
	canonical, ok := nlp.CanonicalWeekday(dayOfWeek)
	if !ok {
		return nil, domain.ErrInvalidWeekday
	}
	return s.schedule.ListByDay(ctx, repository.DefaultUserID, canonical)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedule.Delete(ctx, id)
}
