package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

const scheduleColumns = `id, user_id, subject, time_slot, day_of_week, type, notifications, created_at, updated_at`

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.ScheduleItem) error {
	query := `INSERT INTO schedule_items (` + scheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.Subject, s.TimeSlot, s.DayOfWeek, string(s.Type),
		boolToInt(s.Notifications),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule item: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_items WHERE id = ?`
	return r.scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteScheduleRepo) ListByUser(ctx context.Context, userID string) ([]*domain.ScheduleItem, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_items WHERE user_id = ?
		ORDER BY CASE day_of_week
			WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
			ELSE 7 END, time_slot`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteScheduleRepo) ListByDay(ctx context.Context, userID, dayOfWeek string) ([]*domain.ScheduleItem, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_items
		WHERE user_id = ? AND day_of_week = ? ORDER BY time_slot`
	rows, err := r.db.QueryContext(ctx, query, userID, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("listing schedule items by day: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting schedule item: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) scanItem(row *sql.Row) (*domain.ScheduleItem, error) {
	var s domain.ScheduleItem
	var itemType, createdAt, updatedAt string
	var notifications int
	err := row.Scan(&s.ID, &s.UserID, &s.Subject, &s.TimeSlot, &s.DayOfWeek,
		&itemType, &notifications, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule item: %w", err)
	}
	return r.populateItem(&s, itemType, notifications, createdAt, updatedAt)
}

func (r *SQLiteScheduleRepo) scanItems(rows *sql.Rows) ([]*domain.ScheduleItem, error) {
	var items []*domain.ScheduleItem
	for rows.Next() {
		var s domain.ScheduleItem
		var itemType, createdAt, updatedAt string
		var notifications int
		err := rows.Scan(&s.ID, &s.UserID, &s.Subject, &s.TimeSlot, &s.DayOfWeek,
			&itemType, &notifications, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule item row: %w", err)
		}
		item, parseErr := r.populateItem(&s, itemType, notifications, createdAt, updatedAt)
		if parseErr != nil {
			return nil, parseErr
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule items: %w", err)
	}
	return items, nil
}

func (r *SQLiteScheduleRepo) populateItem(s *domain.ScheduleItem, itemType string, notifications int, createdAt, updatedAt string) (*domain.ScheduleItem, error) {
	s.Type = domain.ScheduleItemType(itemType)
	s.Notifications = notifications != 0

	var err error
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
