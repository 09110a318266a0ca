package service

import (
	"context"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/contract"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
}

type ClassService interface {
	Create(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeDone bool) ([]*domain.Task, error)
	ListDueBy(ctx context.Context, by time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) error
	SaveSummary(ctx context.Context, id, summary string) error
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	Log(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	List(ctx context.Context) ([]*domain.StudySession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	Create(ctx context.Context, s *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	List(ctx context.Context) ([]*domain.ScheduleItem, error)
	ListByDay(ctx context.Context, dayOfWeek string) ([]*domain.ScheduleItem, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	CreateFromRequest(ctx context.Context, req contract.PlanRequest) (*domain.StudyPlan, error)
	GetByID(ctx context.Context, id string) (*domain.StudyPlan, error)
	List(ctx context.Context) ([]*domain.StudyPlan, error)
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	Delete(ctx context.Context, id string) error
}
