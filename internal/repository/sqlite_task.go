package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, user_id, title, subject, due_date, priority, estimated_hours, status, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Subject,
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Priority), t.EstimatedHours, string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string, includeDone bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	if !includeDone {
		query += ` AND status != 'done'`
	}
	query += ` ORDER BY due_date IS NULL, due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListDueBy(ctx context.Context, userID string, by time.Time) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status != 'done' AND due_date IS NOT NULL AND due_date <= ?
		ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query, userID, by.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing due tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, subject = ?, due_date = ?, priority = ?,
		estimated_hours = ?, status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title, t.Subject,
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Priority), t.EstimatedHours, string(t.Status),
		t.UpdatedAt.Format(time.RFC3339), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) CountByUser(ctx context.Context, userID string, includeDone bool) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE user_id = ?`
	if !includeDone {
		query += ` AND status != 'done'`
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return n, nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var due sql.NullString
	var priority, status, createdAt, updatedAt string
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Subject, &due,
		&priority, &t.EstimatedHours, &status, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, due, priority, status, createdAt, updatedAt)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var due sql.NullString
		var priority, status, createdAt, updatedAt string
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Subject, &due,
			&priority, &t.EstimatedHours, &status, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, parseErr := r.populateTask(&t, due, priority, status, createdAt, updatedAt)
		if parseErr != nil {
			return nil, parseErr
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) populateTask(t *domain.Task, due sql.NullString, priority, status, createdAt, updatedAt string) (*domain.Task, error) {
	t.DueDate = parseNullableTime(due, dateLayout)
	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}
