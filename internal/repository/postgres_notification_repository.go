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

const notificationColumns = `id, user_id, task_id, type, message, is_read, created_at`

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, input models.CreateNotificationInput) (*models.Notification, error) {
	notif := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		TaskID:    input.TaskID,
		Type:      input.Type,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	var taskID sql.NullString
	if notif.TaskID != nil {
		taskID = sql.NullString{String: *notif.TaskID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		notif.ID, notif.UserID, taskID, notif.Type, notif.Message, notif.Read, notif.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notif, nil
}

func (r *PostgresNotificationRepository) FindByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to decode notifications: %w", err)
		}
		notifications = append(notifications, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

func (r *PostgresNotificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	n, err := scanNotification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return n, nil
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *PostgresNotificationRepository) MarkAsRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return expectAffected(result)
}

func (r *PostgresNotificationRepository) Exists(ctx context.Context, userID, taskID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM notifications WHERE user_id = $1 AND task_id = $2)`,
		userID, taskID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}
	return exists, nil
}

// DetachTask is normally a no-op: the foreign key already sets task_id to
// NULL on delete. It is kept explicit so callers do not depend on the schema.
func (r *PostgresNotificationRepository) DetachTask(ctx context.Context, taskID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET task_id = NULL WHERE task_id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("failed to detach notifications: %w", err)
	}
	return nil
}

func scanNotification(row rowScanner) (*models.Notification, error) {
	var (
		n      models.Notification
		taskID sql.NullString
	)
	if err := row.Scan(&n.ID, &n.UserID, &taskID, &n.Type, &n.Message, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	if taskID.Valid {
		id := taskID.String
		n.TaskID = &id
	}
	return &n, nil
}
