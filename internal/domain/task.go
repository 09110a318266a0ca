package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidPriority = errors.New("priority must be low, medium, or high")
)

type Task struct {
	ID             string
	UserID         string
	Title          string
	Subject        string
	DueDate        *time.Time
	Priority       Priority
	EstimatedHours float64
	Status         TaskStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks task invariants before persistence.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !ValidPriorities[string(t.Priority)] {
		return ErrInvalidPriority
	}
	return nil
}

// MarkDone transitions the task to done and stamps the update time.
func (t *Task) MarkDone(now time.Time) {
	t.Status = TaskDone
	t.UpdatedAt = now
}

// Overdue reports whether the task has a due date strictly before today.
// Comparison is calendar-day granular in local time.
func (t *Task) Overdue(today time.Time) bool {
	if t.DueDate == nil || t.Status == TaskDone {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := today.Date()
	due := time.Date(y1, m1, d1, 0, 0, 0, 0, time.Local)
	day := time.Date(y2, m2, d2, 0, 0, 0, 0, time.Local)
	return due.Before(day)
}
