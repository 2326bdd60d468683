package handlers

import (
	"net/http"

	"github.com/Dias221467/StudyTask_Manager/pkg/middleware"
	"github.com/gorilla/mux"
)

// Router bundles the handlers mounted by NewRouter.
type Router struct {
	Auth          *AuthHandler
	Tasks         *TaskHandler
	Analytics     *AnalyticsHandler
	Notifications *NotificationHandler
	JWTSecret     string
}

// NewRouter registers every route. Everything except sign up, sign in, email
// verification, health and metrics requires a bearer token.
func NewRouter(h Router) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MetricsMiddleware)

	router.HandleFunc("/health", HealthHandler).Methods("GET")
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")

	router.HandleFunc("/auth/signup", h.Auth.SignUpHandler).Methods("POST")
	router.HandleFunc("/auth/signin", h.Auth.SignInHandler).Methods("POST")
	router.HandleFunc("/auth/verify", h.Auth.VerifyEmailHandler).Methods("GET")

	auth := middleware.AuthMiddleware(h.JWTSecret)

	router.Handle("/auth/me", auth(http.HandlerFunc(h.Auth.MeHandler))).Methods("GET")

	taskRoutes := router.PathPrefix("/tasks").Subrouter()
	taskRoutes.Use(auth)
	taskRoutes.HandleFunc("", h.Tasks.CreateTaskHandler).Methods("POST")
	taskRoutes.HandleFunc("", h.Tasks.GetTasksHandler).Methods("GET")
	taskRoutes.HandleFunc("/{id}", h.Tasks.GetTaskHandler).Methods("GET")
	taskRoutes.HandleFunc("/{id}", h.Tasks.UpdateTaskHandler).Methods("PUT")
	taskRoutes.HandleFunc("/{id}", h.Tasks.DeleteTaskHandler).Methods("DELETE")
	taskRoutes.HandleFunc("/{id}/complete", h.Tasks.CompleteTaskHandler).Methods("POST")

	analyticsRoutes := router.PathPrefix("/analytics").Subrouter()
	analyticsRoutes.Use(auth)
	analyticsRoutes.HandleFunc("/summary", h.Analytics.SummaryHandler).Methods("GET")
	analyticsRoutes.HandleFunc("/stats", h.Analytics.StatsHandler).Methods("GET")
	analyticsRoutes.HandleFunc("/productivity", h.Analytics.ProductivityHandler).Methods("GET")
	analyticsRoutes.HandleFunc("/categories", h.Analytics.CategoriesHandler).Methods("GET")
	analyticsRoutes.HandleFunc("/priorities", h.Analytics.PrioritiesHandler).Methods("GET")
	analyticsRoutes.HandleFunc("/weekly", h.Analytics.WeeklyHandler).Methods("GET")
	analyticsRoutes.HandleFunc("/upcoming", h.Analytics.UpcomingHandler).Methods("GET")

	router.Handle("/calendar", auth(http.HandlerFunc(h.Analytics.CalendarHandler))).Methods("GET")

	notificationRoutes := router.PathPrefix("/notifications").Subrouter()
	notificationRoutes.Use(auth)
	notificationRoutes.HandleFunc("", h.Notifications.GetUserNotificationsHandler).Methods("GET")
	notificationRoutes.HandleFunc("/unread-count", h.Notifications.UnreadCountHandler).Methods("GET")
	notificationRoutes.HandleFunc("/{id}/read", h.Notifications.MarkAsReadHandler).Methods("POST")

	return router
}

// HealthHandler reports that the process is serving requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
