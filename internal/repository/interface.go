package repository

import (
	"context"
	"errors"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// TaskRepository persists a user's tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*models.Task, error)
	// FindByUserID returns the user's tasks ordered by due date, earliest first.
	FindByUserID(ctx context.Context, userID string) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	MarkComplete(ctx context.Context, id string, actualTime *int) (*models.Task, error)
}

// NotificationRepository persists notifications.
type NotificationRepository interface {
	// FindByUserID returns the user's notifications, newest first.
	FindByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, input models.CreateNotificationInput) (*models.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	// Exists reports whether any notification links the user to the task.
	Exists(ctx context.Context, userID, taskID string) (bool, error)
	// DetachTask clears the task reference of notifications about a deleted task.
	DetachTask(ctx context.Context, taskID string) error
}

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByVerifyToken(ctx context.Context, token string) (*models.User, error)
	MarkVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

var (
	_ TaskRepository         = (*MongoTaskRepository)(nil)
	_ TaskRepository         = (*PostgresTaskRepository)(nil)
	_ NotificationRepository = (*MongoNotificationRepository)(nil)
	_ NotificationRepository = (*PostgresNotificationRepository)(nil)
	_ UserRepository         = (*MongoUserRepository)(nil)
	_ UserRepository         = (*PostgresUserRepository)(nil)
)
