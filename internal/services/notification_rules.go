package services

import (
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
)

// UrgencyTier classifies how close a task is to its due date.
type UrgencyTier int

const (
	TierNone UrgencyTier = iota
	TierOverdue
	TierDueWithinDay
	TierDueWithinThreeDays
)

const (
	dueSoonWindow  = 24 * time.Hour
	upcomingWindow = 72 * time.Hour

	dueDateLayout = "Jan 2, 2006"
)

// UrgencyOf places a due date into a tier relative to now. The checks run in
// order, so a task is only "due soon" if it is not already overdue.
func UrgencyOf(due, now time.Time) UrgencyTier {
	switch {
	case due.Before(now):
		return TierOverdue
	case !due.After(now.Add(dueSoonWindow)):
		return TierDueWithinDay
	case !due.After(now.Add(upcomingWindow)):
		return TierDueWithinThreeDays
	default:
		return TierNone
	}
}

// DeriveNotification decides which notification, if any, an unfinished task
// deserves right now. It does not look at previously sent notifications.
// The due date in the message is shown in now's location.
func DeriveNotification(task models.Task, now time.Time) (models.NotificationType, string, bool) {
	if task.IsCompleted() {
		return "", "", false
	}

	switch UrgencyOf(task.DueDate, now) {
	case TierOverdue:
		return models.NotificationTaskOverdue,
			fmt.Sprintf("Task \"%s\" is overdue!", task.Title), true
	case TierDueWithinDay:
		return models.NotificationDeadlineApproaching,
			fmt.Sprintf("Task \"%s\" is due within 24 hours!", task.Title), true
	case TierDueWithinThreeDays:
		return models.NotificationDeadlineApproaching,
			fmt.Sprintf("Task \"%s\" is due soon on %s", task.Title, task.DueDate.In(now.Location()).Format(dueDateLayout)), true
	}
	return "", "", false
}
