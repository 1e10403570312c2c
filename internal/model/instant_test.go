package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	want := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
	}{
		{"rfc3339 string", `"2025-06-15T14:30:00Z"`},
		{"epoch seconds", `1749997800`},
		{"seconds object", `{"seconds":1749997800,"nanoseconds":0}`},
		{"underscore object", `{"_seconds":1749997800,"_nanoseconds":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("ParseInstant: %v", err)
			}
			if !got.UTC().Equal(want) {
				t.Errorf("got %v, want %v", got.UTC(), want)
			}
		})
	}
}

func TestParseInstantBareDate(t *testing.T) {
	got, err := ParseInstant(json.RawMessage(`"2025-06-15"`))
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	if DateKey(got) != "2025-06-15" {
		t.Errorf("got %v", got)
	}
}

func TestParseInstantRejectsGarbage(t *testing.T) {
	for _, raw := range []string{``, `"yesterday"`, `{"foo":1}`, `true`} {
		if _, err := ParseInstant(json.RawMessage(raw)); err == nil {
			t.Errorf("ParseInstant(%q) accepted garbage", raw)
		}
	}
}

func TestReminderInvariant(t *testing.T) {
	done := time.Now()

	ok := []Reminder{
		{ID: "a"},
		{ID: "b", Completed: true, CompletedAt: &done},
	}
	for _, r := range ok {
		if err := r.CheckInvariant(); err != nil {
			t.Errorf("reminder %s: unexpected %v", r.ID, err)
		}
	}

	broken := []Reminder{
		{ID: "c", Completed: true},
		{ID: "d", CompletedAt: &done},
	}
	for _, r := range broken {
		if err := r.CheckInvariant(); err == nil {
			t.Errorf("reminder %s: invariant breach not detected", r.ID)
		}
	}
}
