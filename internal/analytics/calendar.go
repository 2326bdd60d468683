package analytics

import (
	"time"

	"github.com/Dias221467/StudyTask_Manager/internal/models"
)

// CalculateWeeklyCompletion counts completions for each day, Sunday to
// Saturday, of the week containing now.
func CalculateWeeklyCompletion(tasks []models.Task, now time.Time) []models.WeeklyCompletion {
	start := startOfWeek(now)
	days := make([]models.WeeklyCompletion, 0, 7)

	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		entry := models.WeeklyCompletion{Day: day.Format("Mon")}
		for _, t := range tasks {
			if t.CompletedAt != nil && sameDay(t.CompletedAt.In(now.Location()), day) {
				entry.Completed++
			}
		}
		days = append(days, entry)
	}
	return days
}

// GroupByDueDate lays out the calendar grid for month: whole weeks from the
// Sunday on or before the first of the month through the Saturday on or after
// its last day, each day holding the tasks due on it.
func GroupByDueDate(tasks []models.Task, month time.Time) []models.CalendarDay {
	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first)
	end := startOfWeek(last).AddDate(0, 0, 6)

	var grid []models.CalendarDay
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cell := models.CalendarDay{
			Date:    day,
			InMonth: day.Month() == first.Month(),
			Tasks:   []models.Task{},
		}
		for _, t := range tasks {
			if sameDay(t.DueDate.In(loc), day) {
				cell.Tasks = append(cell.Tasks, t)
			}
		}
		grid = append(grid, cell)
	}
	return grid
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
