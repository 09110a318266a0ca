package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidHoursPerDay = errors.New("hours per day must be positive")
	ErrInvalidTaskType    = errors.New("task type must be reading, practice, review, or quiz")
)

type StudyPlan struct {
	ID          string
	UserID      string
	Subject     string
	ExamDate    time.Time
	HoursPerDay float64
	Topics      string // raw comma-separated list as supplied, may be empty
	CreatedAt   time.Time
	Days        []*StudyDay
}

type StudyDay struct {
	ID         string
	PlanID     string
	DayNumber  int // 1-based
	Date       time.Time
	TotalHours float64
	Tasks      []*StudyTask
}

type StudyTask struct {
	ID              string
	DayID           string
	Title           string
	DurationMinutes int
	TaskType        StudyTaskType
	Priority        Priority
	Completed       bool
}

// Validate checks plan invariants before persistence.
func (p *StudyPlan) Validate() error {
	if strings.TrimSpace(p.Subject) == "" {
		return ErrEmptyTitle
	}
	if p.HoursPerDay <= 0 {
		return ErrInvalidHoursPerDay
	}
	return nil
}

// Validate checks study task invariants before persistence.
func (t *StudyTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !ValidStudyTaskTypes[string(t.TaskType)] {
		return ErrInvalidTaskType
	}
	if t.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// TotalMinutes sums task durations for the day.
func (d *StudyDay) TotalMinutes() int {
	total := 0
	for _, t := range d.Tasks {
		total += t.DurationMinutes
	}
	return total
}
