package service

import (
	"context"
	"errors"

	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

const (
	defaultSessionMinutes = 60
	defaultHoursPerDay    = 2.0
)

type profileService struct {
	profiles repository.UserProfileRepo
}

func NewProfileService(profiles repository.UserProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

// Get returns the stored profile, or an unsaved default when none exists.
func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.UserProfile{
				ID:                 repository.DefaultUserID,
				DefaultSessionMin:  defaultSessionMinutes,
				DefaultHoursPerDay: defaultHoursPerDay,
			}, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = repository.DefaultUserID
	}
	if p.DefaultSessionMin <= 0 {
		p.DefaultSessionMin = defaultSessionMinutes
	}
	if p.DefaultHoursPerDay <= 0 {
		p.DefaultHoursPerDay = defaultHoursPerDay
	}
	return s.profiles.Upsert(ctx, p)
}
