package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/repository"
	"github.com/sirupsen/logrus"
)

type NotificationService struct {
	repo     repository.NotificationRepository
	taskRepo repository.TaskRepository
	loc      *time.Location
	now      func() time.Time
}

// NewNotificationService creates a NotificationService. Dates in generated
// messages are shown in loc; nil means UTC.
func NewNotificationService(repo repository.NotificationRepository, taskRepo repository.TaskRepository, loc *time.Location) *NotificationService {
	if loc == nil {
		loc = time.UTC
	}
	return &NotificationService{
		repo:     repo,
		taskRepo: taskRepo,
		loc:      loc,
		now:      time.Now,
	}
}

// GetUserNotifications returns all notifications for a user, newest first
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

// CreateNotification validates and stores a notification
func (s *NotificationService) CreateNotification(ctx context.Context, input models.CreateNotificationInput) (*models.Notification, error) {
	if err := models.ValidateNotification(input); err != nil {
		return nil, err
	}

	notif, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notif, nil
}

// MarkAsRead flips the read flag of one of the user's notifications. Already
// read notifications stay read.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	notif, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if notif.UserID != userID {
		return ErrForbidden
	}
	if notif.Read {
		return nil
	}

	if err := s.repo.MarkAsRead(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// GenerateNotificationsForUser looks at the user's unfinished tasks and stores
// a deadline notification for each task that qualifies and has never had one.
// A task that already has any notification is skipped, whatever its type, so
// each task is notified at most once.
func (s *NotificationService) GenerateNotificationsForUser(ctx context.Context, userID string) error {
	tasks, err := s.taskRepo.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}

	now := s.now().In(s.loc)
	created := 0

	for _, task := range tasks {
		if task.IsCompleted() {
			continue
		}

		exists, err := s.repo.Exists(ctx, userID, task.ID)
		if err != nil {
			return fmt.Errorf("failed to check notifications for task %s: %w", task.ID, err)
		}
		if exists {
			continue
		}

		notifType, message, ok := DeriveNotification(task, now)
		if !ok {
			continue
		}

		taskID := task.ID
		if _, err := s.CreateNotification(ctx, models.CreateNotificationInput{
			UserID:  userID,
			TaskID:  &taskID,
			Type:    notifType,
			Message: message,
		}); err != nil {
			return err
		}
		created++
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"created": created,
	}).Info("Deadline notifications generated")
	return nil
}
