package models

import (
	"time"
)

type TaskCategory string

const (
	CategoryAssignment TaskCategory = "Assignment"
	CategoryProject    TaskCategory = "Project"
	CategoryExam       TaskCategory = "Exam"
	CategoryReading    TaskCategory = "Reading"
	CategoryOther      TaskCategory = "Other"
)

// AllowedCategories lists the categories a task may be filed under.
var AllowedCategories = map[TaskCategory]struct{}{
	CategoryAssignment: {},
	CategoryProject:    {},
	CategoryExam:       {},
	CategoryReading:    {},
	CategoryOther:      {},
}

func (c TaskCategory) Valid() bool {
	_, ok := AllowedCategories[c]
	return ok
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Priorities is the fixed display order used by the priority distribution.
var Priorities = []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}

func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Task is a user-owned unit of academic work.
type Task struct {
	ID            string       `bson:"_id" json:"id"`
	UserID        string       `bson:"user_id" json:"user_id"`
	Title         string       `bson:"title" json:"title"`
	Description   string       `bson:"description,omitempty" json:"description,omitempty"`
	Category      TaskCategory `bson:"category" json:"category"`
	Priority      TaskPriority `bson:"priority" json:"priority"`
	Status        TaskStatus   `bson:"status" json:"status"`
	DueDate       time.Time    `bson:"due_date" json:"due_date"`
	EstimatedTime *int         `bson:"estimated_time,omitempty" json:"estimated_time,omitempty"` // minutes
	ActualTime    *int         `bson:"actual_time,omitempty" json:"actual_time,omitempty"`       // minutes
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updated_at"`
	CompletedAt   *time.Time   `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue reports whether an unfinished task is past its due date.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate.Before(now) && !t.IsCompleted()
}

type CreateTaskInput struct {
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Category      TaskCategory `json:"category"`
	Priority      TaskPriority `json:"priority"`
	DueDate       time.Time    `json:"due_date"`
	EstimatedTime *int         `json:"estimated_time,omitempty"`
}

// UpdateTaskInput carries a partial edit; nil fields are left untouched.
type UpdateTaskInput struct {
	Title         *string       `json:"title,omitempty"`
	Description   *string       `json:"description,omitempty"`
	Category      *TaskCategory `json:"category,omitempty"`
	Priority      *TaskPriority `json:"priority,omitempty"`
	Status        *TaskStatus   `json:"status,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	EstimatedTime *int          `json:"estimated_time,omitempty"`
	ActualTime    *int          `json:"actual_time,omitempty"`
}

// Apply copies the set fields of the input onto the task.
func (in UpdateTaskInput) Apply(task *Task) {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.EstimatedTime != nil {
		v := *in.EstimatedTime
		task.EstimatedTime = &v
	}
	if in.ActualTime != nil {
		v := *in.ActualTime
		task.ActualTime = &v
	}
}
