package handlers

import (
	"net/http"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/services"
	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
	"github.com/gorilla/mux"
)

// TaskHandler handles HTTP requests related to tasks.
type TaskHandler struct {
	Service *services.TaskService
}

// NewTaskHandler creates a new instance of TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

// CreateTaskHandler handles the creation of a new task.
func (h *TaskHandler) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input models.CreateTaskInput
	if !decodeJSON(w, r, &input) {
		return
	}

	task, err := h.Service.CreateTask(r.Context(), userID, input)
	if err != nil {
		writeError(w, err, "Failed to create task")
		return
	}

	logger.Log.WithFields(map[string]interface{}{
		"userID": userID,
		"taskID": task.ID,
	}).Info("Task successfully created")
	writeJSON(w, http.StatusCreated, task)
}

// GetTasksHandler lists the user's tasks. ?filter=pending or ?filter=overdue
// narrows the list.
func (h *TaskHandler) GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var (
		tasks []models.Task
		err   error
	)
	switch filter := r.URL.Query().Get("filter"); filter {
	case "":
		tasks, err = h.Service.GetUserTasks(r.Context(), userID)
	case "pending":
		tasks, err = h.Service.GetPendingTasks(r.Context(), userID)
	case "overdue":
		tasks, err = h.Service.GetOverdueTasks(r.Context(), userID)
	default:
		writeMessage(w, http.StatusBadRequest, "Unknown filter: "+filter)
		return
	}
	if err != nil {
		writeError(w, err, "Failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// GetTaskHandler handles fetching a single task by its ID.
func (h *TaskHandler) GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	task, err := h.Service.GetTask(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to fetch task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input models.UpdateTaskInput
	if !decodeJSON(w, r, &input) {
		return
	}

	task, err := h.Service.UpdateTask(r.Context(), userID, mux.Vars(r)["id"], input)
	if err != nil {
		writeError(w, err, "Failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteTask(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Failed to delete task")
		return
	}
	writeMessage(w, http.StatusOK, "Task deleted successfully")
}

type completeTaskRequest struct {
	ActualTime *int `json:"actual_time"`
}

// CompleteTaskHandler marks a task completed. The body is optional.
func (h *TaskHandler) CompleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req completeTaskRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.Service.CompleteTask(r.Context(), userID, mux.Vars(r)["id"], req.ActualTime)
	if err != nil {
		writeError(w, err, "Failed to complete task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}
