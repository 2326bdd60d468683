package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/services"
)

const monthLayout = "2006-01"

type AnalyticsHandler struct {
	Service *services.AnalyticsService
}

func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service}
}

// GET /analytics/summary
func (h *AnalyticsHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	summary, err := h.Service.Summary(r.Context(), userID)
	respond(w, summary, err)
}

// GET /analytics/stats
func (h *AnalyticsHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	stats, err := h.Service.Stats(r.Context(), userID)
	respond(w, stats, err)
}

// GET /analytics/productivity
func (h *AnalyticsHandler) ProductivityHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	metrics, err := h.Service.Productivity(r.Context(), userID)
	respond(w, metrics, err)
}

// GET /analytics/categories
func (h *AnalyticsHandler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	categories, err := h.Service.Categories(r.Context(), userID)
	respond(w, categories, err)
}

// GET /analytics/priorities
func (h *AnalyticsHandler) PrioritiesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	priorities, err := h.Service.Priorities(r.Context(), userID)
	respond(w, priorities, err)
}

// GET /analytics/weekly
func (h *AnalyticsHandler) WeeklyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	weekly, err := h.Service.Weekly(r.Context(), userID)
	respond(w, weekly, err)
}

// GET /analytics/upcoming?limit=
func (h *AnalyticsHandler) UpcomingHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	upcoming, err := h.Service.Upcoming(r.Context(), userID, limit)
	respond(w, upcoming, err)
}

// GET /calendar?month=YYYY-MM, defaulting to the current month.
func (h *AnalyticsHandler) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	month := time.Now().UTC()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
			return
		}
		month = parsed
	}

	days, err := h.Service.Calendar(r.Context(), userID, month)
	respond(w, days, err)
}

func respond(w http.ResponseWriter, v interface{}, err error) {
	if err != nil {
		writeError(w, err, "Failed to compute analytics")
		return
	}
	writeJSON(w, http.StatusOK, v)
}
