package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxTitleLength = 200

// ValidationError carries one or more user-input problems.
type ValidationError struct {
	Problems []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

func newValidationError(problems ...string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// ValidateTask checks a new task and reports every problem it finds, in a
// stable order.
func ValidateTask(input CreateTaskInput, now time.Time) error {
	var problems []string

	if strings.TrimSpace(input.Title) == "" {
		problems = append(problems, "Title is required")
	}
	if utf8.RuneCountInString(input.Title) > MaxTitleLength {
		problems = append(problems, "Title must be less than 200 characters")
	}
	if input.DueDate.Before(now) {
		problems = append(problems, "Due date cannot be in the past")
	}
	if input.EstimatedTime != nil && *input.EstimatedTime < 0 {
		problems = append(problems, "Estimated time cannot be negative")
	}
	if !input.Category.Valid() {
		problems = append(problems, "Invalid category")
	}
	if !input.Priority.Valid() {
		problems = append(problems, "Invalid priority")
	}

	return newValidationError(problems...)
}

// ValidateTaskUpdate checks the fields present in an edit. Past due dates are
// allowed here; only creation rejects them.
func ValidateTaskUpdate(input UpdateTaskInput) error {
	var problems []string

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			problems = append(problems, "Title is required")
		}
		if utf8.RuneCountInString(*input.Title) > MaxTitleLength {
			problems = append(problems, "Title must be less than 200 characters")
		}
	}
	if input.EstimatedTime != nil && *input.EstimatedTime < 0 {
		problems = append(problems, "Estimated time cannot be negative")
	}
	if input.ActualTime != nil && *input.ActualTime < 0 {
		problems = append(problems, "Actual time cannot be negative")
	}
	if input.Category != nil && !input.Category.Valid() {
		problems = append(problems, "Invalid category")
	}
	if input.Priority != nil && !input.Priority.Valid() {
		problems = append(problems, "Invalid priority")
	}
	if input.Status != nil && !input.Status.Valid() {
		problems = append(problems, "Invalid status")
	}

	return newValidationError(problems...)
}

// ValidateNotification stops at the first problem.
func ValidateNotification(input CreateNotificationInput) error {
	if strings.TrimSpace(input.Message) == "" {
		return newValidationError("Notification message is required")
	}
	if input.UserID == "" {
		return newValidationError("User ID is required")
	}
	if !input.Type.Valid() {
		return newValidationError("Invalid notification type")
	}
	return nil
}

// ValidateSignUp stops at the first problem.
func ValidateSignUp(input SignUpInput) error {
	if !strings.Contains(input.Email, "@") {
		return newValidationError("Invalid email address")
	}
	if len(input.Password) < 6 {
		return newValidationError("Password must be at least 6 characters")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return newValidationError("Full name is required")
	}
	return nil
}

// ValidateSignIn stops at the first problem.
func ValidateSignIn(input SignInInput) error {
	if !strings.Contains(input.Email, "@") {
		return newValidationError("Invalid email address")
	}
	if input.Password == "" {
		return newValidationError("Password is required")
	}
	return nil
}
