package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsFixture() (*AnalyticsService, *memTaskRepo) {
	taskService, tasks, _ := newTaskFixture()
	svc := NewAnalyticsService(taskService)
	svc.now = clock
	return svc, tasks
}

func TestAnalyticsSummary(t *testing.T) {
	svc, tasks := newAnalyticsFixture()
	done := fixedNow.Add(-time.Hour)
	tasks.add(models.Task{ID: "a", UserID: "u1", Category: models.CategoryExam, Priority: models.PriorityHigh,
		Status: models.StatusCompleted, DueDate: fixedNow, CompletedAt: &done,
		EstimatedTime: intPtr(60), ActualTime: intPtr(30)})
	tasks.add(models.Task{ID: "b", UserID: "u1", Category: models.CategoryReading, Priority: models.PriorityLow,
		Status: models.StatusPending, DueDate: fixedNow.Add(time.Hour)})
	tasks.add(models.Task{ID: "c", UserID: "u2", Status: models.StatusPending, DueDate: fixedNow})

	summary, err := svc.Summary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, models.TaskStats{Total: 2, Completed: 1, Pending: 1}, summary.Stats)
	assert.Equal(t, 50, summary.Productivity.CompletionRate)
	assert.Equal(t, 1, summary.Productivity.CompletedThisWeek)
	assert.Equal(t, 60, summary.Productivity.AvgEstimatedTime)
	assert.Equal(t, 30, summary.Productivity.AvgActualTime)
	assert.Len(t, summary.Categories, 2)
	assert.Len(t, summary.Priorities, 3)
	assert.Len(t, summary.Weekly, 7)
	require.Len(t, summary.Upcoming, 1)
	assert.Equal(t, "b", summary.Upcoming[0].ID)
}

func TestAnalyticsUpcoming_DefaultLimit(t *testing.T) {
	svc, tasks := newAnalyticsFixture()
	for i := 0; i < 8; i++ {
		tasks.add(models.Task{ID: string(rune('a' + i)), UserID: "u1", Status: models.StatusPending, DueDate: fixedNow.Add(time.Duration(i) * time.Hour)})
	}

	upcoming, err := svc.Upcoming(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Len(t, upcoming, 5)

	upcoming, err = svc.Upcoming(context.Background(), "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(upcoming))
}

func TestAnalyticsCalendar(t *testing.T) {
	svc, tasks := newAnalyticsFixture()
	tasks.add(models.Task{ID: "a", UserID: "u1", Status: models.StatusPending, DueDate: time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)})

	days, err := svc.Calendar(context.Background(), "u1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, days, 35)

	found := 0
	for _, d := range days {
		found += len(d.Tasks)
	}
	assert.Equal(t, 1, found)
}

func TestAnalytics_PropagatesRepoError(t *testing.T) {
	svc, tasks := newAnalyticsFixture()
	tasks.err = errBoom

	_, err := svc.Stats(context.Background(), "u1")
	assert.ErrorIs(t, err, errBoom)
	_, err = svc.Summary(context.Background(), "u1")
	assert.ErrorIs(t, err, errBoom)
}
