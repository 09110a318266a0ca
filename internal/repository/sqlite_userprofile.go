package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// DefaultUserID identifies the single local user row.
const DefaultUserID = "default"

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, name, school, default_session_min, default_hours_per_day
		FROM users WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, DefaultUserID)

	var p domain.UserProfile
	err := row.Scan(&p.ID, &p.Name, &p.School, &p.DefaultSessionMin, &p.DefaultHoursPerDay)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		p.ID = DefaultUserID
	}
	// ON CONFLICT rather than INSERT OR REPLACE: REPLACE deletes the
	// existing row first, which would cascade to every child table.
	query := `INSERT INTO users (id, name, school, default_session_min, default_hours_per_day)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			school = excluded.school,
			default_session_min = excluded.default_session_min,
			default_hours_per_day = excluded.default_hours_per_day`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.School, p.DefaultSessionMin, p.DefaultHoursPerDay,
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
