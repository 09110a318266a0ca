package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday      = errors.New("day of week must be a canonical weekday name")
	ErrInvalidScheduleType = errors.New("schedule item type must be class, exam, or reminder")
)

type ScheduleItem struct {
	ID            string
	UserID        string
	Subject       string
	TimeSlot      string // e.g. "2:00 PM"
	DayOfWeek     string // canonical weekday name
	Type          ScheduleItemType
	Notifications bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks schedule item invariants before persistence.
func (s *ScheduleItem) Validate() error {
	if strings.TrimSpace(s.Subject) == "" {
		return ErrEmptyTitle
	}
	if !ValidWeekday(s.DayOfWeek) {
		return ErrInvalidWeekday
	}
	if !ValidScheduleItemTypes[string(s.Type)] {
		return ErrInvalidScheduleType
	}
	return nil
}
