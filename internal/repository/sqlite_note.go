package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

const noteColumns = `id, user_id, title, content, subject, summary, created_at, updated_at`

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (` + noteColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Title, n.Content, n.Subject, n.Summary,
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`
	return r.scanNote(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteNoteRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()
	return r.scanNotes(rows)
}

func (r *SQLiteNoteRepo) Update(ctx context.Context, n *domain.Note) error {
	query := `UPDATE notes SET title = ?, content = ?, subject = ?, summary = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		n.Title, n.Content, n.Subject, n.Summary,
		n.UpdatedAt.Format(time.RFC3339), n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return n, nil
}

func (r *SQLiteNoteRepo) scanNote(row *sql.Row) (*domain.Note, error) {
	var n domain.Note
	var createdAt, updatedAt string
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Subject, &n.Summary, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return r.populateNote(&n, createdAt, updatedAt)
}

func (r *SQLiteNoteRepo) scanNotes(rows *sql.Rows) ([]*domain.Note, error) {
	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAt, updatedAt string
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Subject, &n.Summary, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		note, parseErr := r.populateNote(&n, createdAt, updatedAt)
		if parseErr != nil {
			return nil, parseErr
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

func (r *SQLiteNoteRepo) populateNote(n *domain.Note, createdAt, updatedAt string) (*domain.Note, error) {
	var err error
	n.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return n, nil
}
