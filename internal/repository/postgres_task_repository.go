package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/google/uuid"
)

const taskColumns = `id, user_id, title, description, category, priority, status, due_date,
	estimated_time, actual_time, created_at, updated_at, completed_at`

// PostgresTaskRepository stores tasks in the "tasks" table.
type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := time.Now()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, nullString(task.Description), task.Category, task.Priority,
		task.Status, task.DueDate, nullInt(task.EstimatedTime), nullInt(task.ActualTime),
		task.CreatedAt, task.UpdatedAt, nullTime(task.CompletedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (r *PostgresTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return task, nil
}

func (r *PostgresTaskRepository) FindByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY due_date ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tasks: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

func (r *PostgresTaskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.UpdatedAt = time.Now()

	query := `UPDATE tasks SET title = $1, description = $2, category = $3, priority = $4, status = $5,
		due_date = $6, estimated_time = $7, actual_time = $8, updated_at = $9, completed_at = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		task.Title, nullString(task.Description), task.Category, task.Priority, task.Status,
		task.DueDate, nullInt(task.EstimatedTime), nullInt(task.ActualTime), task.UpdatedAt,
		nullTime(task.CompletedAt), task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if err := expectAffected(result); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return expectAffected(result)
}

func (r *PostgresTaskRepository) MarkComplete(ctx context.Context, id string, actualTime *int) (*models.Task, error) {
	query := `UPDATE tasks SET status = $1, completed_at = NOW(), updated_at = NOW(),
		actual_time = COALESCE($2, actual_time)
		WHERE id = $3 RETURNING ` + taskColumns
	row := r.db.QueryRowContext(ctx, query, models.StatusCompleted, nullInt(actualTime), id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return task, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task        models.Task
		description sql.NullString
		estimated   sql.NullInt64
		actual      sql.NullInt64
		completedAt sql.NullTime
	)
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &description, &task.Category, &task.Priority,
		&task.Status, &task.DueDate, &estimated, &actual, &task.CreatedAt, &task.UpdatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	task.EstimatedTime = intFromNull(estimated)
	task.ActualTime = intFromNull(actual)
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}
	return &task, nil
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
