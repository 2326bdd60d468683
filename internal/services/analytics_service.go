package services

import (
	"context"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/analytics"
	"github.com/Dias221467/StudyTask_Manager/internal/models"
)

const defaultUpcomingLimit = 5

// AnalyticsService loads a user's tasks and runs the calculators over them.
// Nothing is cached; every call sees the current task list.
type AnalyticsService struct {
	tasks *TaskService
	now   func() time.Time
}

func NewAnalyticsService(tasks *TaskService) *AnalyticsService {
	return &AnalyticsService{tasks: tasks, now: time.Now}
}

func (s *AnalyticsService) Stats(ctx context.Context, userID string) (models.TaskStats, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return models.TaskStats{}, err
	}
	return analytics.CalculateTaskStats(tasks), nil
}

func (s *AnalyticsService) Productivity(ctx context.Context, userID string) (models.ProductivityMetrics, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return models.ProductivityMetrics{}, err
	}
	return analytics.CalculateProductivityMetricsAt(tasks, s.now()), nil
}

func (s *AnalyticsService) Categories(ctx context.Context, userID string) ([]models.CategoryStats, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CalculateCategoryBreakdown(tasks), nil
}

func (s *AnalyticsService) Priorities(ctx context.Context, userID string) ([]models.PriorityStats, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CalculatePriorityDistribution(tasks), nil
}

func (s *AnalyticsService) Weekly(ctx context.Context, userID string) ([]models.WeeklyCompletion, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CalculateWeeklyCompletion(tasks, s.now()), nil
}

// Upcoming returns the next unfinished tasks by due date. A limit below one
// falls back to the default of five.
func (s *AnalyticsService) Upcoming(ctx context.Context, userID string, limit int) ([]models.Task, error) {
	if limit < 1 {
		limit = defaultUpcomingLimit
	}
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.UpcomingDeadlines(tasks, limit), nil
}

// Calendar returns the Sunday-aligned grid of the month containing month.
func (s *AnalyticsService) Calendar(ctx context.Context, userID string, month time.Time) ([]models.CalendarDay, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.GroupByDueDate(tasks, month), nil
}

// Summary computes every dashboard aggregate from a single task read.
func (s *AnalyticsService) Summary(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	tasks, err := s.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &models.DashboardSummary{
		Stats:        analytics.CalculateTaskStats(tasks),
		Productivity: analytics.CalculateProductivityMetricsAt(tasks, now),
		Categories:   analytics.CalculateCategoryBreakdown(tasks),
		Priorities:   analytics.CalculatePriorityDistribution(tasks),
		Weekly:       analytics.CalculateWeeklyCompletion(tasks, now),
		Upcoming:     analytics.UpcomingDeadlines(tasks, defaultUpcomingLimit),
	}, nil
}
