package repository

import (
	"context"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/domain"
)

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type ClassRepo interface {
	Create(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string, includeDone bool) ([]*domain.Task, error)
	ListDueBy(ctx context.Context, userID string, by time.Time) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string, includeDone bool) (int, error)
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ScheduleItem, error)
	ListByDay(ctx context.Context, userID, dayOfWeek string) ([]*domain.ScheduleItem, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.StudySession, error)
	ListRecent(ctx context.Context, userID string, days int) ([]*domain.StudySession, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.StudyPlan) error
	CreateDay(ctx context.Context, d *domain.StudyDay) error
	CreateTask(ctx context.Context, t *domain.StudyTask) error
	GetByID(ctx context.Context, id string) (*domain.StudyPlan, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.StudyPlan, error)
	SetTaskCompleted(ctx context.Context, taskID string, completed bool) error
	Delete(ctx context.Context, id string) error
}

type ChatRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error)
	DeleteByUser(ctx context.Context, userID string) error
}
