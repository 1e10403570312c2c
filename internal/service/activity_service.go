package service

import (
	"context"
	"log"
	"time"

	"study-reminders/internal/activity"
	"study-reminders/internal/calendar"
	"study-reminders/internal/model"
	"study-reminders/internal/repository"
)

// ActivityService derives the engagement snapshot (streak, totals,
// monthly progress, study calendar) from completion and usage history.
type ActivityService struct {
	reminderRepo *repository.ReminderRepository
	usageRepo    *repository.UsageRepository
}

func NewActivityService(reminderRepo *repository.ReminderRepository, usageRepo *repository.UsageRepository) *ActivityService {
	return &ActivityService{reminderRepo: reminderRepo, usageRepo: usageRepo}
}

// RecordVisit stores today's engagement record. The first interaction
// of a local day counts as study activity on its own.
func (s *ActivityService) RecordVisit(ctx context.Context, user *model.User, now time.Time) error {
	return s.usageRepo.RecordDay(ctx, user.ID, model.DateKey(now))
}

// StudyDays assembles the study-day set for the user: completion dates
// plus recorded visit dates plus the implicit today. Records breaking
// the completed/completedAt invariant are logged and left out.
func (s *ActivityService) StudyDays(ctx context.Context, user *model.User, now time.Time) (activity.StudyDays, error) {
	completed, err := s.reminderRepo.ListCompleted(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	days, bad := activity.FromReminders(completed)
	for _, err := range bad {
		log.Printf("[warn] skipping inconsistent record: %v", err)
	}

	dates, err := s.usageRepo.ListDates(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	days.AddDates(dates)

	days.MarkToday(now)
	return days, nil
}

// Summary computes the stats shown on the overview cards.
func (s *ActivityService) Summary(ctx context.Context, user *model.User, now time.Time) (activity.Summary, error) {
	days, err := s.StudyDays(ctx, user, now)
	if err != nil {
		return activity.Summary{}, err
	}
	return activity.Summarize(days, now), nil
}

// MonthCells returns the study calendar for now's month: the plain
// grid with each cell flagged when its date is in the study-day set.
func (s *ActivityService) MonthCells(ctx context.Context, user *model.User, now time.Time) ([]calendar.Cell, error) {
	days, err := s.StudyDays(ctx, user, now)
	if err != nil {
		return nil, err
	}
	cells := calendar.MonthGrid(now.Month(), now.Year(), nil, now)
	return calendar.MarkStudied(cells, now.Month(), now.Year(), days), nil
}
