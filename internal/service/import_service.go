package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"study-reminders/internal/model"
	"study-reminders/internal/repository"
)

// exportedReminder is one document of a store export. The reminderTime
// and completedAt fields arrive in whichever shape the old app wrote
// them; model.ParseInstant normalizes all of them here, at the edge,
// so nothing past this function sees a raw representation.
type exportedReminder struct {
	ID           string          `json:"id"`
	Text         string          `json:"text"`
	ReminderTime json.RawMessage `json:"reminderTime"`
	Importance   int             `json:"importance"`
	Completed    bool            `json:"completed"`
	CompletedAt  json.RawMessage `json:"completedAt"`
}

// ImportService loads reminder exports from the previous backing store.
type ImportService struct {
	repo *repository.ReminderRepository
}

func NewImportService(repo *repository.ReminderRepository) *ImportService {
	return &ImportService{repo: repo}
}

// ImportJSON reads an export (a JSON array of documents) and stores the
// usable records for the user. Documents that cannot be normalized are
// counted and logged, not fatal: one bad record must not sink a
// migration. Returns how many reminders were imported.
func (s *ImportService) ImportJSON(ctx context.Context, user *model.User, r io.Reader) (int, error) {
	var docs []exportedReminder
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return 0, fmt.Errorf("decode export: %w", err)
	}

	imported := 0
	for i, doc := range docs {
		reminder, err := s.normalize(doc, user.ID)
		if err != nil {
			log.Printf("[warn] export document %d skipped: %v", i, err)
			continue
		}
		if err := s.repo.Create(ctx, reminder); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func (s *ImportService) normalize(doc exportedReminder, userID uint) (*model.Reminder, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return nil, fmt.Errorf("empty text")
	}

	scheduledAt, err := model.ParseInstant(doc.ReminderTime)
	if err != nil {
		return nil, fmt.Errorf("reminderTime: %w", err)
	}

	importance := model.Importance(doc.Importance)
	if !importance.Valid() {
		importance = model.ImportanceMedium
	}

	reminder := &model.Reminder{
		ID:          doc.ID,
		UserID:      userID,
		Text:        strings.TrimSpace(doc.Text),
		ScheduledAt: scheduledAt,
		Importance:  importance,
		Completed:   doc.Completed,
	}

	if doc.Completed {
		if len(doc.CompletedAt) == 0 {
			return nil, fmt.Errorf("completed without completedAt")
		}
		completedAt, err := model.ParseInstant(doc.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("completedAt: %w", err)
		}
		reminder.CompletedAt = &completedAt
	} else if len(doc.CompletedAt) != 0 && string(doc.CompletedAt) != "null" {
		return nil, fmt.Errorf("completedAt without completed")
	}

	if err := reminder.CheckInvariant(); err != nil {
		return nil, err
	}
	return reminder, nil
}
