// Package analytics reduces a user's task list into the aggregates shown on
// the dashboard. Every function here is pure: the same tasks (and the same
// reference time, where one is taken) always give the same result.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
)

const week = 7 * 24 * time.Hour

// CalculateTaskStats counts tasks per status.
func CalculateTaskStats(tasks []models.Task) models.TaskStats {
	stats := models.TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusPending:
			stats.Pending++
		}
	}
	return stats
}

// CalculateProductivityMetrics uses the current wall clock for the weekly window.
func CalculateProductivityMetrics(tasks []models.Task) models.ProductivityMetrics {
	return CalculateProductivityMetricsAt(tasks, time.Now())
}

// CalculateProductivityMetricsAt computes the metrics relative to now.
// Average times only consider completed tasks that carry both an estimate and
// an actual duration.
func CalculateProductivityMetricsAt(tasks []models.Task, now time.Time) models.ProductivityMetrics {
	var metrics models.ProductivityMetrics

	completed := 0
	timed := 0
	var sumEstimated, sumActual int
	weekAgo := now.Add(-week)

	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
			if t.EstimatedTime != nil && t.ActualTime != nil {
				timed++
				sumEstimated += *t.EstimatedTime
				sumActual += *t.ActualTime
			}
		}
		if t.CompletedAt != nil && !t.CompletedAt.Before(weekAgo) && !t.CompletedAt.After(now) {
			metrics.CompletedThisWeek++
		}
	}

	if len(tasks) > 0 {
		metrics.CompletionRate = roundDiv(100*completed, len(tasks))
	}
	if timed > 0 {
		metrics.AvgEstimatedTime = roundDiv(sumEstimated, timed)
		metrics.AvgActualTime = roundDiv(sumActual, timed)
	}
	return metrics
}

// CalculateCategoryBreakdown counts tasks per category in order of first appearance.
func CalculateCategoryBreakdown(tasks []models.Task) []models.CategoryStats {
	breakdown := []models.CategoryStats{}
	index := make(map[models.TaskCategory]int)

	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(breakdown)
			index[t.Category] = i
			breakdown = append(breakdown, models.CategoryStats{Name: string(t.Category)})
		}
		breakdown[i].Value++
	}
	return breakdown
}

// CalculatePriorityDistribution always returns High, Medium and Low, in that order.
func CalculatePriorityDistribution(tasks []models.Task) []models.PriorityStats {
	dist := make([]models.PriorityStats, 0, len(models.Priorities))

	for _, p := range models.Priorities {
		entry := models.PriorityStats{Name: string(p)}
		for _, t := range tasks {
			if t.Priority != p {
				continue
			}
			entry.Total++
			if t.IsCompleted() {
				entry.Completed++
			}
		}
		if entry.Total > 0 {
			entry.Percentage = float64(entry.Completed) / float64(entry.Total) * 100
		}
		dist = append(dist, entry)
	}
	return dist
}

// UpcomingDeadlines returns the unfinished tasks with the nearest due dates.
func UpcomingDeadlines(tasks []models.Task, limit int) []models.Task {
	upcoming := []models.Task{}
	for _, t := range tasks {
		if !t.IsCompleted() {
			upcoming = append(upcoming, t)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

func roundDiv(num, den int) int {
	return int(math.Round(float64(num) / float64(den)))
}
