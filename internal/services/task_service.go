package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/repository"
	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
)

// TaskService encapsulates the business logic for tasks.
type TaskService struct {
	repo             repository.TaskRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repository.TaskRepository, notificationRepo repository.NotificationRepository) *TaskService {
	return &TaskService{
		repo:             repo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// CreateTask validates the input and stores a new Pending task for the user.
func (s *TaskService) CreateTask(ctx context.Context, userID string, input models.CreateTaskInput) (*models.Task, error) {
	if err := models.ValidateTask(input, s.now()); err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Warn("Rejected task input")
		return nil, err
	}

	task := &models.Task{
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Priority:      input.Priority,
		Status:        models.StatusPending,
		DueDate:       input.DueDate,
		EstimatedTime: input.EstimatedTime,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create task")
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.Log.WithField("task_id", created.ID).Info("Task created in service layer")
	return created, nil
}

// GetTask retrieves one of the user's tasks.
func (s *TaskService) GetTask(ctx context.Context, userID, id string) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task.UserID != userID {
		logger.Log.WithFields(map[string]interface{}{
			"user_id": userID,
			"task_id": id,
		}).Warn("Task access by non-owner")
		return nil, ErrForbidden
	}
	return task, nil
}

// UpdateTask applies a partial edit. Any status may be set; moving a task
// into Completed stamps its completion time if it has none yet.
func (s *TaskService) UpdateTask(ctx context.Context, userID, id string, input models.UpdateTaskInput) (*models.Task, error) {
	if err := models.ValidateTaskUpdate(input); err != nil {
		return nil, err
	}

	task, err := s.GetTask(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	input.Apply(task)
	if task.IsCompleted() && task.CompletedAt == nil {
		now := s.now()
		task.CompletedAt = &now
	}

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		logger.Log.WithField("task_id", id).WithError(err).Error("Failed to update task")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	logger.Log.WithField("task_id", id).Info("Task updated successfully in service layer")
	return updated, nil
}

// DeleteTask removes the task and unlinks its notifications.
func (s *TaskService) DeleteTask(ctx context.Context, userID, id string) error {
	if _, err := s.GetTask(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Log.WithField("task_id", id).WithError(err).Error("Failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if err := s.notificationRepo.DetachTask(ctx, id); err != nil {
		return fmt.Errorf("failed to detach notifications: %w", err)
	}

	logger.Log.WithField("task_id", id).Info("Task deleted successfully in service layer")
	return nil
}

// CompleteTask marks the task Completed, optionally recording the minutes it took.
func (s *TaskService) CompleteTask(ctx context.Context, userID, id string, actualTime *int) (*models.Task, error) {
	if actualTime != nil && *actualTime < 0 {
		return nil, &models.ValidationError{Problems: []string{"Actual time cannot be negative"}}
	}

	if _, err := s.GetTask(ctx, userID, id); err != nil {
		return nil, err
	}

	completed, err := s.repo.MarkComplete(ctx, id, actualTime)
	if err != nil {
		logger.Log.WithField("task_id", id).WithError(err).Error("Failed to complete task")
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	logger.Log.WithField("task_id", id).Info("Task completed")
	return completed, nil
}

// GetUserTasks returns all of the user's tasks, earliest due date first.
func (s *TaskService) GetUserTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to fetch tasks")
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetPendingTasks(ctx context.Context, userID string) ([]models.Task, error) {
	return s.filter(ctx, userID, func(t models.Task) bool {
		return t.Status == models.StatusPending
	})
}

func (s *TaskService) GetOverdueTasks(ctx context.Context, userID string) ([]models.Task, error) {
	now := s.now()
	return s.filter(ctx, userID, func(t models.Task) bool {
		return t.IsOverdue(now)
	})
}

func (s *TaskService) filter(ctx context.Context, userID string, keep func(models.Task) bool) ([]models.Task, error) {
	tasks, err := s.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []models.Task{}
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}
