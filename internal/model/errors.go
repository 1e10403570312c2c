package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a reminder id absent
// from the user's current records.
var ErrNotFound = errors.New("reminder not found")

// ValidationError rejects a lifecycle transition before anything is
// written. The caller can correct the input and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvariantError flags a stored record whose completed flag and
// completedAt timestamp disagree. Such records are excluded from derived
// analytics instead of silently skewing them.
type InvariantError struct {
	ReminderID string
	Reason     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("reminder %s: %s", e.ReminderID, e.Reason)
}
