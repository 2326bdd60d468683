package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/repository"
	"github.com/Dias221467/StudyTask_Manager/internal/services"
	"github.com/Dias221467/StudyTask_Manager/pkg/logger"
	"github.com/Dias221467/StudyTask_Manager/pkg/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeError maps service errors to status codes. Validation failures carry
// every problem in an "errors" list.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"errors": verr.Problems})
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrEmailInUse):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrEmailNotVerified):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidToken):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.WithError(err).Error(fallback)
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.WithError(err).Warn("Invalid request payload")
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// currentUserID returns the signed-in user's id, answering 401 when there is none.
func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil || claims.UserID == "" {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return claims.UserID, true
}
