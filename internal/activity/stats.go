package activity

import (
	"math"
	"time"

	"study-reminders/internal/calendar"
)

// Summary is the derived engagement snapshot shown on the overview and
// activity views.
type Summary struct {
	Streak          int
	TotalDays       int
	MonthlyProgress int // integer percent of the current month studied
}

// Streak counts consecutive study dates ending at and including today.
// The walk stops at the first missing date; older history past a gap
// never counts. An empty set yields 0.
func Streak(days StudyDays, today time.Time) int {
	streak := 0
	current := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for days.Has(current) {
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak
}

// MonthlyProgress returns the share of today's month covered by study
// dates, as an integer percent rounded half up.
func MonthlyProgress(days StudyDays, today time.Time) int {
	total := calendar.DaysInMonth(today.Month(), today.Year())
	prefix := today.Format("2006-01")
	count := 0
	for key := range days {
		if len(key) >= 7 && key[:7] == prefix {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// Summarize computes the full snapshot.
func Summarize(days StudyDays, today time.Time) Summary {
	return Summary{
		Streak:          Streak(days, today),
		TotalDays:       len(days),
		MonthlyProgress: MonthlyProgress(days, today),
	}
}
