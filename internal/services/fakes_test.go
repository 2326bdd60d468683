package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/repository"
)

type memTaskRepo struct {
	tasks  map[string]*models.Task
	nextID int
	err    error
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*models.Task{}}
}

func (r *memTaskRepo) add(t models.Task) {
	cp := t
	r.tasks[t.ID] = &cp
}

func (r *memTaskRepo) FindByID(_ context.Context, id string) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) FindByUserID(_ context.Context, userID string) ([]models.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *memTaskRepo) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	r.nextID++
	task.ID = fmt.Sprintf("task-%d", r.nextID)
	r.add(*task)
	return task, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *models.Task) (*models.Task, error) {
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	r.add(*task)
	return task, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) MarkComplete(_ context.Context, id string, actualTime *int) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	now := time.Now()
	t.Status = models.StatusCompleted
	t.CompletedAt = &now
	if actualTime != nil {
		v := *actualTime
		t.ActualTime = &v
	}
	cp := *t
	return &cp, nil
}

type memNotificationRepo struct {
	items     []models.Notification
	existsErr error
}

func (r *memNotificationRepo) FindByUserID(_ context.Context, userID string) ([]models.Notification, error) {
	out := []models.Notification{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID == userID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *memNotificationRepo) FindByID(_ context.Context, id string) (*models.Notification, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			cp := r.items[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, item := range r.items {
		if item.UserID == userID && !item.Read {
			n++
		}
	}
	return n, nil
}

func (r *memNotificationRepo) Create(_ context.Context, input models.CreateNotificationInput) (*models.Notification, error) {
	n := models.Notification{
		ID:        fmt.Sprintf("notif-%d", len(r.items)+1),
		UserID:    input.UserID,
		TaskID:    input.TaskID,
		Type:      input.Type,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	r.items = append(r.items, n)
	return &n, nil
}

func (r *memNotificationRepo) MarkAsRead(_ context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memNotificationRepo) Exists(_ context.Context, userID, taskID string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, item := range r.items {
		if item.UserID == userID && item.TaskID != nil && *item.TaskID == taskID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memNotificationRepo) DetachTask(_ context.Context, taskID string) error {
	for i := range r.items {
		if r.items[i].TaskID != nil && *r.items[i].TaskID == taskID {
			r.items[i].TaskID = nil
		}
	}
	return nil
}

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *memUserRepo) FindByVerifyToken(_ context.Context, token string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.VerifyToken != "" && u.VerifyToken == token })
}

func (r *memUserRepo) MarkVerified(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsVerified = true
	u.VerifyToken = ""
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) find(match func(*models.User) bool) (*models.User, error) {
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type recordingMailer struct {
	to, subject, body string
	err               error
}

func (m *recordingMailer) SendEmail(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return m.err
}

var errBoom = errors.New("boom")

var fixedNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func intPtr(v int) *int { return &v }
