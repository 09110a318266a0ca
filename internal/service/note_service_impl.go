package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

type noteService struct {
	notes repository.NoteRepo
}

func NewNoteService(notes repository.NoteRepo) NoteService {
	return &noteService{notes: notes}
}

func (s *noteService) Create(ctx context.Context, n *domain.Note) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.UserID == "" {
		n.UserID = repository.DefaultUserID
	}
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	if err := n.Validate(); err != nil {
		return err
	}
	return s.notes.Create(ctx, n)
}

func (s *noteService) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *noteService) List(ctx context.Context) ([]*domain.Note, error) {
	return s.notes.ListByUser(ctx, repository.DefaultUserID)
}

func (s *noteService) Update(ctx context.Context, n *domain.Note) error {
	if err := n.Validate(); err != nil {
		return err
	}
	n.UpdatedAt = time.Now()
	return s.notes.Update(ctx, n)
}

// SaveSummary stores a generated summary alongside the note's content.
func (s *noteService) SaveSummary(ctx context.Context, id, summary string) error {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	n.Summary = summary
	n.UpdatedAt = time.Now()
	return s.notes.Update(ctx, n)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
