package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

type classService struct {
	classes repository.ClassRepo
}

func NewClassService(classes repository.ClassRepo) ClassService {
	return &classService{classes: classes}
}

func (s *classService) Create(ctx context.Context, c *domain.Class) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.UserID == "" {
		c.UserID = repository.DefaultUserID
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := c.Validate(); err != nil {
		return err
	}
	return s.classes.Create(ctx, c)
}

func (s *classService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	return s.classes.GetByID(ctx, id)
}

func (s *classService) List(ctx context.Context) ([]*domain.Class, error) {
	return s.classes.ListByUser(ctx, repository.DefaultUserID)
}

func (s *classService) Update(ctx context.Context, c *domain.Class) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return s.classes.Update(ctx, c)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	return s.classes.Delete(ctx, id)
}
