package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"study-reminders/internal/model"
	"study-reminders/internal/repository"
)

// ReminderInput carries the user-editable fields of a reminder through
// creation and edit.
type ReminderInput struct {
	Text        string
	ScheduledAt time.Time
	Importance  model.Importance
}

// ReminderService owns the reminder lifecycle: validated creation,
// edit while scheduled, one-shot completion, deletion. Every transition
// is checked against an injected now before anything is written.
type ReminderService struct {
	repo *repository.ReminderRepository
}

func NewReminderService(repo *repository.ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

// validate gates every persisted transition. The time check is strict:
// scheduling at exactly now fails.
func validate(input ReminderInput, now time.Time) error {
	if strings.TrimSpace(input.Text) == "" {
		return &model.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if !input.ScheduledAt.After(now) {
		return &model.ValidationError{Field: "scheduledAt", Reason: "must be in the future"}
	}
	return nil
}

// Create moves a draft to scheduled.
func (s *ReminderService) Create(ctx context.Context, user *model.User, input ReminderInput, now time.Time) (*model.Reminder, error) {
	if err := validate(input, now); err != nil {
		return nil, err
	}

	importance := input.Importance
	if !importance.Valid() {
		importance = model.ImportanceMedium
	}

	reminder := model.Reminder{
		UserID:      user.ID,
		Text:        strings.TrimSpace(input.Text),
		ScheduledAt: input.ScheduledAt,
		Importance:  importance,
	}

	if err := s.repo.Create(ctx, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// Update edits a scheduled reminder. Completed reminders are frozen.
func (s *ReminderService) Update(ctx context.Context, user *model.User, id string, input ReminderInput, now time.Time) (*model.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	if reminder.Completed {
		return nil, &model.ValidationError{Field: "completed", Reason: "a completed reminder cannot be edited"}
	}
	if err := validate(input, now); err != nil {
		return nil, err
	}

	reminder.Text = strings.TrimSpace(input.Text)
	reminder.ScheduledAt = input.ScheduledAt
	if input.Importance.Valid() {
		reminder.Importance = input.Importance
	}

	if err := s.repo.Save(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Complete marks a reminder done at the given instant. Completing an
// already-completed reminder is a no-op: the record comes back
// unchanged and the original completion date stands.
func (s *ReminderService) Complete(ctx context.Context, user *model.User, id string, now time.Time) (*model.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	if reminder.Completed {
		return reminder, nil
	}
	if err := s.repo.MarkCompleted(ctx, reminder, now); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Delete removes a reminder in any state.
func (s *ReminderService) Delete(ctx context.Context, user *model.User, id string) error {
	return s.repo.Delete(ctx, user.ID, id)
}

// Get fetches one reminder.
func (s *ReminderService) Get(ctx context.Context, user *model.User, id string) (*model.Reminder, error) {
	return s.repo.FindByID(ctx, user.ID, id)
}

// List returns the user's reminders in display order.
func (s *ReminderService) List(ctx context.Context, user *model.User) ([]model.Reminder, error) {
	reminders, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return OrderForDisplay(reminders), nil
}

// OrderForDisplay sorts a snapshot for presentation: incomplete before
// completed, then ascending scheduled time, with id as the final tie
// break so repeated calls over the same snapshot agree. Importance is
// a display attribute only and never moves a reminder.
func OrderForDisplay(reminders []model.Reminder) []model.Reminder {
	ordered := make([]model.Reminder, len(reminders))
	copy(ordered, reminders)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if !a.ScheduledAt.Equal(b.ScheduledAt) {
			return a.ScheduledAt.Before(b.ScheduledAt)
		}
		return a.ID < b.ID
	})
	return ordered
}

// IsNotFound reports whether err is the missing-reminder case.
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
