package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"study-reminders/internal/model"
	"study-reminders/internal/repository"
)

func TestImportJSONNormalizesTimestampShapes(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := repository.NewReminderRepository(db)
	svc := NewImportService(repo)

	// One document per timestamp shape the old store produced, plus a
	// completed one and two that must be skipped.
	export := `[
		{"id":"r1","text":"iso string","reminderTime":"2025-06-20T14:30:00Z","importance":1,"completed":false},
		{"id":"r2","text":"epoch seconds","reminderTime":1750430000,"completed":false},
		{"id":"r3","text":"object form","reminderTime":{"seconds":1750430000,"nanoseconds":0},"completed":false},
		{"id":"r4","text":"already done","reminderTime":"2025-06-10T09:00:00Z","completed":true,"completedAt":"2025-06-10T10:00:00Z"},
		{"id":"r5","text":"","reminderTime":"2025-06-20T14:30:00Z","completed":false},
		{"id":"r6","text":"broken","reminderTime":"2025-06-20T14:30:00Z","completed":true}
	]`

	count, err := svc.ImportJSON(context.Background(), user, strings.NewReader(export))
	require.NoError(t, err)
	require.Equal(t, 4, count)

	reminders, err := repo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, reminders, 4)

	byID := make(map[string]model.Reminder)
	for _, r := range reminders {
		byID[r.ID] = r
	}

	require.Equal(t, model.ImportanceHigh, byID["r1"].Importance)
	require.Equal(t, model.ImportanceMedium, byID["r2"].Importance, "unknown importance defaults to medium")
	require.True(t, byID["r2"].ScheduledAt.Equal(byID["r3"].ScheduledAt), "number and object forms decode to the same instant")

	done := byID["r4"]
	require.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	require.NoError(t, done.CheckInvariant())
}

func TestImportJSONRejectsBadPayload(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewImportService(repository.NewReminderRepository(db))

	_, err := svc.ImportJSON(context.Background(), user, strings.NewReader(`{"not":"an array"}`))
	require.Error(t, err)
}

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("20:15")
	require.NoError(t, err)
	require.Equal(t, "0 15 20 * * *", spec)

	for _, bad := range []string{"", "20", "24:00", "12:60", "aa:bb"} {
		_, err := buildDailySpec(bad)
		require.Error(t, err, "spec %q", bad)
	}
}
