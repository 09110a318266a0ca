package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// SQLiteClassRepo implements ClassRepo using a SQLite database.
type SQLiteClassRepo struct {
	db db.DBTX
}

// NewSQLiteClassRepo creates a new SQLiteClassRepo.
func NewSQLiteClassRepo(conn db.DBTX) *SQLiteClassRepo {
	return &SQLiteClassRepo{db: conn}
}

const classColumns = `id, user_id, name, instructor, location, meeting_day, meeting_time, color, created_at, updated_at`

func (r *SQLiteClassRepo) Create(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (` + classColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Name, c.Instructor, c.Location, c.MeetingDay, c.MeetingTime, c.Color,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting class: %w", err)
	}
	return nil
}

func (r *SQLiteClassRepo) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = ?`
	return r.scanClass(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteClassRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	defer rows.Close()
	return r.scanClasses(rows)
}

func (r *SQLiteClassRepo) Update(ctx context.Context, c *domain.Class) error {
	query := `UPDATE classes SET name = ?, instructor = ?, location = ?, meeting_day = ?,
		meeting_time = ?, color = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name, c.Instructor, c.Location, c.MeetingDay, c.MeetingTime, c.Color,
		c.UpdatedAt.Format(time.RFC3339), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating class: %w", err)
	}
	return nil
}

func (r *SQLiteClassRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting class: %w", err)
	}
	return nil
}

func (r *SQLiteClassRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting classes: %w", err)
	}
	return n, nil
}

func (r *SQLiteClassRepo) scanClass(row *sql.Row) (*domain.Class, error) {
	var c domain.Class
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Instructor, &c.Location,
		&c.MeetingDay, &c.MeetingTime, &c.Color, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("class: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning class: %w", err)
	}
	return r.populateClass(&c, createdAt, updatedAt)
}

func (r *SQLiteClassRepo) scanClasses(rows *sql.Rows) ([]*domain.Class, error) {
	var classes []*domain.Class
	for rows.Next() {
		var c domain.Class
		var createdAt, updatedAt string
		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Instructor, &c.Location,
			&c.MeetingDay, &c.MeetingTime, &c.Color, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning class row: %w", err)
		}
		class, parseErr := r.populateClass(&c, createdAt, updatedAt)
		if parseErr != nil {
			return nil, parseErr
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating classes: %w", err)
	}
	return classes, nil
}

func (r *SQLiteClassRepo) populateClass(c *domain.Class, createdAt, updatedAt string) (*domain.Class, error) {
	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return c, nil
}
