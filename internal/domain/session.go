package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDuration = errors.New("duration must be positive")

type StudySession struct {
	ID              string
	UserID          string
	Subject         string
	DurationMinutes int
	SessionDate     time.Time
	Notes           string
	CreatedAt       time.Time
}

// Validate checks session invariants before persistence.
func (s *StudySession) Validate() error {
	if strings.TrimSpace(s.Subject) == "" {
		return ErrEmptyTitle
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
