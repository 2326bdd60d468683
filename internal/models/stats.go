package models

import "time"

// Aggregates below are recomputed from the task list on every read.

type TaskStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

type ProductivityMetrics struct {
	CompletionRate    int `json:"completion_rate"`
	CompletedThisWeek int `json:"completed_this_week"`
	AvgEstimatedTime  int `json:"avg_estimated_time"`
	AvgActualTime     int `json:"avg_actual_time"`
}

type CategoryStats struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type PriorityStats struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

type WeeklyCompletion struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
}

type CalendarDay struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	Tasks   []Task    `json:"tasks"`
}

// DashboardSummary bundles everything the analytics page shows.
type DashboardSummary struct {
	Stats        TaskStats           `json:"stats"`
	Productivity ProductivityMetrics `json:"productivity"`
	Categories   []CategoryStats     `json:"categories"`
	Priorities   []PriorityStats     `json:"priorities"`
	Weekly       []WeeklyCompletion  `json:"weekly"`
	Upcoming     []Task              `json:"upcoming"`
}
