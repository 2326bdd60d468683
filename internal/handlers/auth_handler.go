package handlers

import (
	"net/http"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
	"github.com/Dias221467/StudyTask_Manager/internal/services"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles account endpoints.
type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// POST /auth/signup
func (h *AuthHandler) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var input models.SignUpInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.Service.SignUp(r.Context(), input)
	if err != nil {
		writeError(w, err, "Failed to register user")
		return
	}

	msg := "Account created"
	if !user.IsVerified {
		msg = "Account created, please check your email to verify it"
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": msg,
		"user":    user,
	})
}

// POST /auth/signin
func (h *AuthHandler) SignInHandler(w http.ResponseWriter, r *http.Request) {
	var input models.SignInInput
	if !decodeJSON(w, r, &input) {
		return
	}

	token, user, err := h.Service.SignIn(r.Context(), input)
	if err != nil {
		writeError(w, err, "Failed to sign in")
		return
	}

	logrus.WithField("userID", user.ID).Info("User signed in")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// GET /auth/verify?token=
func (h *AuthHandler) VerifyEmailHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if err := h.Service.VerifyEmail(r.Context(), token); err != nil {
		writeError(w, err, "Failed to verify email")
		return
	}
	writeMessage(w, http.StatusOK, "Email verified successfully")
}

// GET /auth/me
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	user, err := h.Service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
