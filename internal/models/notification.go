package models

import (
	"time"
)

type NotificationType string

const (
	NotificationDeadlineApproaching NotificationType = "deadline_approaching"
	NotificationTaskOverdue         NotificationType = "task_overdue"
	NotificationTaskCompleted       NotificationType = "task_completed"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationDeadlineApproaching, NotificationTaskOverdue, NotificationTaskCompleted:
		return true
	}
	return false
}

type Notification struct {
	ID        string           `bson:"_id" json:"id"`
	UserID    string           `bson:"user_id" json:"user_id"`
	TaskID    *string          `bson:"task_id" json:"task_id"` // nil once the task is gone
	Type      NotificationType `bson:"type" json:"type"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"is_read" json:"is_read"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}

type CreateNotificationInput struct {
	UserID  string
	TaskID  *string
	Type    NotificationType
	Message string
}
