package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func problemsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Problems
}

func intPtr(v int) *int { return &v }

func TestValidateTask(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	valid := CreateTaskInput{
		Title:    "Read chapter 4",
		Category: CategoryReading,
		Priority: PriorityMedium,
		DueDate:  now.Add(48 * time.Hour),
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, ValidateTask(valid, now))
	})

	t.Run("empty title and past due date", func(t *testing.T) {
		in := valid
		in.Title = ""
		in.DueDate = now.Add(-24 * time.Hour)

		assert.Equal(t, []string{"Title is required", "Due date cannot be in the past"}, problemsOf(t, ValidateTask(in, now)))
	})

	t.Run("enum problems follow the field checks", func(t *testing.T) {
		in := CreateTaskInput{DueDate: now.Add(-time.Hour)}
		assert.Equal(t, []string{
			"Title is required",
			"Due date cannot be in the past",
			"Invalid category",
			"Invalid priority",
		}, problemsOf(t, ValidateTask(in, now)))
	})

	t.Run("whitespace title", func(t *testing.T) {
		in := valid
		in.Title = "   "
		assert.Equal(t, []string{"Title is required"}, problemsOf(t, ValidateTask(in, now)))
	})

	t.Run("title length boundary", func(t *testing.T) {
		in := valid
		in.Title = strings.Repeat("a", MaxTitleLength)
		assert.NoError(t, ValidateTask(in, now))

		in.Title = strings.Repeat("a", MaxTitleLength+1)
		assert.Equal(t, []string{"Title must be less than 200 characters"}, problemsOf(t, ValidateTask(in, now)))
	})

	t.Run("due date equal to now is accepted", func(t *testing.T) {
		in := valid
		in.DueDate = now
		assert.NoError(t, ValidateTask(in, now))
	})

	t.Run("estimated time", func(t *testing.T) {
		in := valid
		in.EstimatedTime = intPtr(0)
		assert.NoError(t, ValidateTask(in, now))

		in.EstimatedTime = intPtr(-5)
		assert.Equal(t, []string{"Estimated time cannot be negative"}, problemsOf(t, ValidateTask(in, now)))
	})

	t.Run("unknown enums", func(t *testing.T) {
		in := valid
		in.Category = "Homework"
		in.Priority = "Urgent"
		assert.Equal(t, []string{"Invalid category", "Invalid priority"}, problemsOf(t, ValidateTask(in, now)))
	})
}

func TestValidateTaskUpdate(t *testing.T) {
	empty := ""
	status := TaskStatus("Done")

	assert.NoError(t, ValidateTaskUpdate(UpdateTaskInput{}))

	past := time.Now().Add(-time.Hour)
	assert.NoError(t, ValidateTaskUpdate(UpdateTaskInput{DueDate: &past}))

	err := ValidateTaskUpdate(UpdateTaskInput{Title: &empty, Status: &status, ActualTime: intPtr(-1)})
	assert.Equal(t, []string{"Title is required", "Actual time cannot be negative", "Invalid status"}, problemsOf(t, err))
}

func TestValidateNotification(t *testing.T) {
	assert.NoError(t, ValidateNotification(CreateNotificationInput{
		UserID: "u1", Type: NotificationTaskOverdue, Message: "Task \"x\" is overdue!",
	}))

	// Fails fast: only the first problem is reported.
	err := ValidateNotification(CreateNotificationInput{Message: " "})
	assert.Equal(t, []string{"Notification message is required"}, problemsOf(t, err))

	err = ValidateNotification(CreateNotificationInput{Message: "hi", Type: NotificationTaskOverdue})
	assert.Equal(t, []string{"User ID is required"}, problemsOf(t, err))

	err = ValidateNotification(CreateNotificationInput{Message: "hi", UserID: "u1", Type: "ping"})
	assert.Equal(t, []string{"Invalid notification type"}, problemsOf(t, err))
}

func TestValidateSignUp(t *testing.T) {
	cases := []struct {
		name  string
		input SignUpInput
		want  string
	}{
		{"missing at", SignUpInput{Email: "student.example.com", Password: "secret1", FullName: "A"}, "Invalid email address"},
		{"short password", SignUpInput{Email: "s@example.com", Password: "12345", FullName: "A"}, "Password must be at least 6 characters"},
		{"blank name", SignUpInput{Email: "s@example.com", Password: "123456", FullName: "  "}, "Full name is required"},
		{"first problem wins", SignUpInput{}, "Invalid email address"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []string{tc.want}, problemsOf(t, ValidateSignUp(tc.input)))
		})
	}

	assert.NoError(t, ValidateSignUp(SignUpInput{Email: "s@example.com", Password: "123456", FullName: "Sam"}))
}

func TestValidateSignIn(t *testing.T) {
	assert.NoError(t, ValidateSignIn(SignInInput{Email: "s@example.com", Password: "x"}))
	assert.Equal(t, []string{"Invalid email address"}, problemsOf(t, ValidateSignIn(SignInInput{Email: "nope", Password: "x"})))
	assert.Equal(t, []string{"Password is required"}, problemsOf(t, ValidateSignIn(SignInInput{Email: "s@example.com"})))
}

func TestTaskHelpers(t *testing.T) {
	now := time.Now()
	task := Task{Status: StatusPending, DueDate: now.Add(-time.Minute)}
	assert.True(t, task.IsOverdue(now))

	task.Status = StatusCompleted
	assert.False(t, task.IsOverdue(now))

	title := "New title"
	status := StatusInProgress
	UpdateTaskInput{Title: &title, Status: &status, ActualTime: intPtr(30)}.Apply(&task)
	assert.Equal(t, "New title", task.Title)
	assert.Equal(t, StatusInProgress, task.Status)
	require.NotNil(t, task.ActualTime)
	assert.Equal(t, 30, *task.ActualTime)
}
