package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Plans are an
// aggregate: GetByID loads the plan with its days and tasks; Creates for
// days and tasks are exposed separately so the service can compose them
// inside one transaction.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.StudyPlan) error {
	query := `INSERT INTO study_plans (id, user_id, subject, exam_date, hours_per_day, topics, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Subject,
		p.ExamDate.Format(dateLayout),
		p.HoursPerDay, p.Topics,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) CreateDay(ctx context.Context, d *domain.StudyDay) error {
	query := `INSERT INTO study_plan_days (id, plan_id, day_number, date, total_hours)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.PlanID, d.DayNumber, d.Date.Format(dateLayout), d.TotalHours,
	)
	if err != nil {
		return fmt.Errorf("inserting study plan day: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) CreateTask(ctx context.Context, t *domain.StudyTask) error {
	query := `INSERT INTO study_plan_tasks (id, day_id, title, duration_minutes, task_type, priority, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.DayID, t.Title, t.DurationMinutes, string(t.TaskType), string(t.Priority),
		boolToInt(t.Completed),
	)
	if err != nil {
		return fmt.Errorf("inserting study plan task: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.StudyPlan, error) {
	query := `SELECT id, user_id, subject, exam_date, hours_per_day, topics, created_at
		FROM study_plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := r.scanPlan(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) ListByUser(ctx context.Context, userID string) ([]*domain.StudyPlan, error) {
	query := `SELECT id, user_id, subject, exam_date, hours_per_day, topics, created_at
		FROM study_plans WHERE user_id = ? ORDER BY exam_date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing study plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.StudyPlan
	for rows.Next() {
		var p domain.StudyPlan
		var examDate, createdAt string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Subject, &examDate, &p.HoursPerDay, &p.Topics, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning study plan row: %w", err)
		}
		if err := r.populatePlan(&p, examDate, createdAt); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE study_plan_tasks SET completed = ? WHERE id = ?`,
		boolToInt(completed), taskID,
	)
	if err != nil {
		return fmt.Errorf("updating study plan task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("study plan task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	// Days and tasks cascade via foreign keys.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting study plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.StudyPlan, error) {
	var p domain.StudyPlan
	var examDate, createdAt string
	err := row.Scan(&p.ID, &p.UserID, &p.Subject, &examDate, &p.HoursPerDay, &p.Topics, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study plan: %w", err)
	}
	if err := r.populatePlan(&p, examDate, createdAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePlanRepo) populatePlan(p *domain.StudyPlan, examDate, createdAt string) error {
	var err error
	p.ExamDate, err = time.Parse(dateLayout, examDate)
	if err != nil {
		return fmt.Errorf("parsing exam_date: %w", err)
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) loadDays(ctx context.Context, p *domain.StudyPlan) error {
	query := `SELECT id, plan_id, day_number, date, total_hours
		FROM study_plan_days WHERE plan_id = ? ORDER BY day_number`
	rows, err := r.db.QueryContext(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("listing study plan days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.StudyDay
		var date string
		if err := rows.Scan(&d.ID, &d.PlanID, &d.DayNumber, &date, &d.TotalHours); err != nil {
			return fmt.Errorf("scanning study plan day: %w", err)
		}
		d.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return fmt.Errorf("parsing day date: %w", err)
		}
		p.Days = append(p.Days, &d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating study plan days: %w", err)
	}

	for _, d := range p.Days {
		if err := r.loadTasks(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePlanRepo) loadTasks(ctx context.Context, d *domain.StudyDay) error {
	query := `SELECT id, day_id, title, duration_minutes, task_type, priority, completed
		FROM study_plan_tasks WHERE day_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, d.ID)
	if err != nil {
		return fmt.Errorf("listing study plan tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.StudyTask
		var taskType, priority string
		var completed int
		if err := rows.Scan(&t.ID, &t.DayID, &t.Title, &t.DurationMinutes, &taskType, &priority, &completed); err != nil {
			return fmt.Errorf("scanning study plan task: %w", err)
		}
		t.TaskType = domain.StudyTaskType(taskType)
		t.Priority = domain.Priority(priority)
		t.Completed = completed != 0
		d.Tasks = append(d.Tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating study plan tasks: %w", err)
	}
	return nil
}
