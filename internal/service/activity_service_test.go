package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"study-reminders/internal/model"
	"study-reminders/internal/repository"
)

func seedCompleted(t *testing.T, svc *ReminderService, user *model.User, now, doneAt time.Time, text string) {
	t.Helper()
	ctx := context.Background()
	reminder, err := svc.Create(ctx, user, ReminderInput{Text: text, ScheduledAt: doneAt.Add(time.Minute)}, now)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, user, reminder.ID, doneAt)
	require.NoError(t, err)
}

func TestActivitySummary(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	reminderRepo := repository.NewReminderRepository(db)
	reminderSvc := NewReminderService(reminderRepo)
	activitySvc := NewActivityService(reminderRepo, repository.NewUsageRepository(db))
	ctx := context.Background()

	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	// Completions yesterday and the day before; today is implicit.
	seedCompleted(t, reminderSvc, user, base, now.AddDate(0, 0, -1), "chapter 4")
	seedCompleted(t, reminderSvc, user, base, now.AddDate(0, 0, -2), "chapter 3")
	// A second completion on the same date collapses.
	seedCompleted(t, reminderSvc, user, base, now.AddDate(0, 0, -1).Add(2*time.Hour), "notes")
	// An old completion past a gap never extends the streak.
	seedCompleted(t, reminderSvc, user, base, now.AddDate(0, 0, -5), "chapter 1")

	summary, err := activitySvc.Summary(ctx, user, now)
	require.NoError(t, err)
	require.Equal(t, 3, summary.Streak)
	require.Equal(t, 4, summary.TotalDays)
	// 4 of June's 30 days studied: 13.33 rounds to 13.
	require.Equal(t, 13, summary.MonthlyProgress)
}

func TestVisitCountsAsEngagement(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	reminderRepo := repository.NewReminderRepository(db)
	activitySvc := NewActivityService(reminderRepo, repository.NewUsageRepository(db))
	ctx := context.Background()

	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

	// No completions at all: just opening the app yields a streak of 1.
	summary, err := activitySvc.Summary(ctx, user, now)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Streak)
	require.Equal(t, 1, summary.TotalDays)

	// A recorded visit yesterday survives into today's computation.
	require.NoError(t, activitySvc.RecordVisit(ctx, user, now.AddDate(0, 0, -1)))
	summary, err = activitySvc.Summary(ctx, user, now)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Streak)

	// Recording the same day twice stays one record.
	require.NoError(t, activitySvc.RecordVisit(ctx, user, now))
	require.NoError(t, activitySvc.RecordVisit(ctx, user, now.Add(time.Hour)))
	summary, err = activitySvc.Summary(ctx, user, now)
	require.NoError(t, err)
	require.Equal(t, 2, summary.TotalDays)
}

func TestInconsistentRecordsAreExcluded(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	reminderRepo := repository.NewReminderRepository(db)
	activitySvc := NewActivityService(reminderRepo, repository.NewUsageRepository(db))
	ctx := context.Background()

	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

	// A record arriving from the store with completed set but no
	// completedAt must not feed the streak.
	broken := model.Reminder{
		ID:          "broken",
		UserID:      user.ID,
		Text:        "corrupt",
		ScheduledAt: now.AddDate(0, 0, -1),
		Completed:   true,
	}
	require.NoError(t, db.Create(&broken).Error)

	summary, err := activitySvc.Summary(ctx, user, now)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Streak) // implicit today only
	require.Equal(t, 1, summary.TotalDays)
}

func TestMonthCells(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	reminderRepo := repository.NewReminderRepository(db)
	reminderSvc := NewReminderService(reminderRepo)
	activitySvc := NewActivityService(reminderRepo, repository.NewUsageRepository(db))
	ctx := context.Background()

	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	seedCompleted(t, reminderSvc, user, base, time.Date(2025, time.June, 3, 20, 0, 0, 0, time.UTC), "early win")

	cells, err := activitySvc.MonthCells(ctx, user, now)
	require.NoError(t, err)
	require.Len(t, cells, 30) // June 2025 starts on a Sunday

	for _, cell := range cells {
		switch cell.Day {
		case 3:
			require.True(t, cell.HasStudied, "completion day should be marked")
		case 15:
			require.True(t, cell.IsToday)
			require.True(t, cell.HasStudied, "implicit today should be marked")
		default:
			require.False(t, cell.HasStudied, "day %d", cell.Day)
		}
	}
}
