package domain

import (
	"strings"
	"time"
)

type Class struct {
	ID         string
	UserID     string
	Name       string
	Instructor string
	Location   string
	MeetingDay string // canonical weekday name, empty if unscheduled
	MeetingTime string
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks class invariants before persistence.
func (c *Class) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyTitle
	}
	if c.MeetingDay != "" && !ValidWeekday(c.MeetingDay) {
		return ErrInvalidWeekday
	}
	return nil
}
