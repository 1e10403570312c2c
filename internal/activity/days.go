// Package activity derives engagement analytics from completion and
// usage history: the study-day set, the current streak, and monthly
// progress. All functions are pure over an injected "today".
package activity

import (
	"time"

	"study-reminders/internal/model"
)

// StudyDays is the set of local calendar dates on which the user
// studied, keyed by model.DateKey. Several completions on one date
// collapse to a single entry.
type StudyDays map[string]bool

// Add inserts the calendar date of t.
func (d StudyDays) Add(t time.Time) {
	d[model.DateKey(t)] = true
}

// Has reports membership of the calendar date of t.
func (d StudyDays) Has(t time.Time) bool {
	return d[model.DateKey(t)]
}

// MarkToday records the implicit engagement day: opening the planner
// counts as study activity for that date, completions or not.
func (d StudyDays) MarkToday(today time.Time) {
	d.Add(today)
}

// FromReminders builds the set from completed reminders, using the
// calendar date of each completion. Records whose completed flag and
// completedAt disagree are excluded and reported; they must not skew
// the streak.
func FromReminders(reminders []model.Reminder) (StudyDays, []error) {
	days := make(StudyDays)
	var bad []error
	for i := range reminders {
		r := &reminders[i]
		if err := r.CheckInvariant(); err != nil {
			bad = append(bad, err)
			continue
		}
		if r.Completed {
			days.Add(*r.CompletedAt)
		}
	}
	return days, bad
}

// AddDates merges pre-keyed calendar dates (usage history) into the set.
func (d StudyDays) AddDates(dates []string) {
	for _, key := range dates {
		d[key] = true
	}
}
