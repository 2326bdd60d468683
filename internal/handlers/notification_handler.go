package handlers

import (
	"net/http"

	"github.com/Dias221467/StudyTask_Manager/internal/services"
	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// GET /notifications
// Deadline notifications are generated before the list is read.
func (h *NotificationHandler) GetUserNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Service.GenerateNotificationsForUser(r.Context(), userID); err != nil {
		logger.Log.Errorf("Failed to generate notifications: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to generate notifications")
		return
	}

	notifications, err := h.Service.GetUserNotifications(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to get notifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// GET /notifications/unread-count
func (h *NotificationHandler) UnreadCountHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	count, err := h.Service.GetUnreadCount(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to count notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// POST /notifications/{id}/read
func (h *NotificationHandler) MarkAsReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.Service.MarkAsRead(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Failed to mark as read")
		return
	}
	writeMessage(w, http.StatusOK, "Notification marked as read")
}
