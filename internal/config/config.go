package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken    string
	DatabaseURL      string
	SummaryTime      string // HH:MM local time of the nightly summary
	ReportInterval   time.Duration
	CalendarRollover bool // let month navigation cross year boundaries
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		TelegramToken:    strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SummaryTime:      strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
		ReportInterval:   parseInterval(strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS"))),
		CalendarRollover: parseBool(strings.TrimSpace(os.Getenv("CALENDAR_ROLLOVER"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "study_reminders.db"
	}

	if cfg.SummaryTime == "" {
		cfg.SummaryTime = "20:00"
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
