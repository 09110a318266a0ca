package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/repository"
)

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskSubject(subject string) TaskOption {
	return func(t *domain.Task) {
		t.Subject = subject
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now()
	t := &domain.Task{
		ID:             uuid.New().String(),
		UserID:         repository.DefaultUserID,
		Title:          title,
		Priority:       domain.PriorityMedium,
		EstimatedHours: 1,
		Status:         domain.TaskTodo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Class options
type ClassOption func(*domain.Class)

func WithMeeting(day, timeSlot string) ClassOption {
	return func(c *domain.Class) {
		c.MeetingDay = day
		c.MeetingTime = timeSlot
	}
}

func WithInstructor(name string) ClassOption {
	return func(c *domain.Class) {
		c.Instructor = name
	}
}

func NewTestClass(name string, opts ...ClassOption) *domain.Class {
	now := time.Now()
	c := &domain.Class{
		ID:        uuid.New().String(),
		UserID:    repository.DefaultUserID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Note options
type NoteOption func(*domain.Note)

func WithNoteSubject(subject string) NoteOption {
	return func(n *domain.Note) {
		n.Subject = subject
	}
}

func WithContent(content string) NoteOption {
	return func(n *domain.Note) {
		n.Content = content
	}
}

func NewTestNote(title string, opts ...NoteOption) *domain.Note {
	now := time.Now()
	n := &domain.Note{
		ID:        uuid.New().String(),
		UserID:    repository.DefaultUserID,
		Title:     title,
		Content:   "placeholder note content",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Session options
type SessionOption func(*domain.StudySession)

func WithSessionDate(d time.Time) SessionOption {
	return func(s *domain.StudySession) {
		s.SessionDate = d
	}
}

func WithDuration(minutes int) SessionOption {
	return func(s *domain.StudySession) {
		s.DurationMinutes = minutes
	}
}

func NewTestSession(subject string, opts ...SessionOption) *domain.StudySession {
	now := time.Now()
	s := &domain.StudySession{
		ID:              uuid.New().String(),
		UserID:          repository.DefaultUserID,
		Subject:         subject,
		DurationMinutes: 60,
		SessionDate:     now,
		CreatedAt:       now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule item options
type ScheduleOption func(*domain.ScheduleItem)

func WithItemType(t domain.ScheduleItemType) ScheduleOption {
	return func(s *domain.ScheduleItem) {
		s.Type = t
	}
}

func WithTimeSlot(slot string) ScheduleOption {
	return func(s *domain.ScheduleItem) {
		s.TimeSlot = slot
	}
}

func NewTestScheduleItem(subject, dayOfWeek string, opts ...ScheduleOption) *domain.ScheduleItem {
	now := time.Now()
	s := &domain.ScheduleItem{
		ID:            uuid.New().String(),
		UserID:        repository.DefaultUserID,
		Subject:       subject,
		DayOfWeek:     dayOfWeek,
		Type:          domain.ScheduleReminder,
		Notifications: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
