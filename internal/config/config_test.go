package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SUMMARY_TIME", "")
	t.Setenv("REPORT_INTERVAL_HOURS", "")
	t.Setenv("CALENDAR_ROLLOVER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "study_reminders.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SummaryTime != "20:00" {
		t.Errorf("SummaryTime = %q", cfg.SummaryTime)
	}
	if cfg.ReportInterval != 0 {
		t.Errorf("ReportInterval = %v, want 0", cfg.ReportInterval)
	}
	if cfg.CalendarRollover {
		t.Error("CalendarRollover should default to false")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error without TELEGRAM_TOKEN")
	}
}

func TestLoadParsesValues(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("DATABASE_URL", "data/bot.db")
	t.Setenv("SUMMARY_TIME", "21:30")
	t.Setenv("REPORT_INTERVAL_HOURS", "6")
	t.Setenv("CALENDAR_ROLLOVER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "data/bot.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SummaryTime != "21:30" {
		t.Errorf("SummaryTime = %q", cfg.SummaryTime)
	}
	if cfg.ReportInterval != 6*time.Hour {
		t.Errorf("ReportInterval = %v", cfg.ReportInterval)
	}
	if !cfg.CalendarRollover {
		t.Error("CalendarRollover should be true")
	}
}

func TestParseInterval(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"12", 12 * time.Hour},
		{"0", 0},
		{"-3", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := parseInterval(tc.raw); got != tc.want {
			t.Errorf("parseInterval(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
