package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Log(ctx context.Context, session *domain.StudySession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.UserID == "" {
		session.UserID = repository.DefaultUserID
	}
	if session.SessionDate.IsZero() {
		session.SessionDate = time.Now()
	}
	session.CreatedAt = time.Now()
	if err := session.Validate(); err != nil {
		return err
	}
	return s.sessions.Create(ctx, session)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.StudySession, error) {
	return s.sessions.ListByUser(ctx, repository.DefaultUserID)
}

func (s *sessionService) ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error) {
	return s.sessions.ListRecent(ctx, repository.DefaultUserID, days)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
