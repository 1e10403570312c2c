package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Importance levels keep the wire codes of the original store:
// 1 is the highest, 3 the lowest, 2 the default.
type Importance int

const (
	ImportanceHigh   Importance = 1
	ImportanceMedium Importance = 2
	ImportanceLow    Importance = 3
)

// Valid reports whether v is one of the three known levels.
func (v Importance) Valid() bool {
	return v >= ImportanceHigh && v <= ImportanceLow
}

// Label returns the display name shown next to a reminder.
func (v Importance) Label() string {
	switch v {
	case ImportanceHigh:
		return "High Priority"
	case ImportanceLow:
		return "Low Priority"
	default:
		return "Medium Priority"
	}
}

// Reminder is a single scheduled study entry.
type Reminder struct {
	ID          string `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Text        string
	ScheduledAt time.Time
	Importance  Importance `gorm:"default:2"`
	Completed   bool       `gorm:"default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate assigns an opaque id, mirroring store-generated document ids.
func (r *Reminder) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// CheckInvariant verifies that Completed and CompletedAt agree. A record
// arriving from the store with one but not the other must not feed any
// derived computation.
func (r *Reminder) CheckInvariant() error {
	if r.Completed && r.CompletedAt == nil {
		return &InvariantError{ReminderID: r.ID, Reason: "completed without completedAt"}
	}
	if !r.Completed && r.CompletedAt != nil {
		return &InvariantError{ReminderID: r.ID, Reason: "completedAt without completed"}
	}
	return nil
}
