package model

import "time"

// DateKey is the canonical calendar-date form ("2006-01-02") used to key
// per-day activity. Two instants on the same local day share a key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// UsageRecord marks one calendar day on which the user opened the app.
// Visiting counts as engagement even without completing anything, so
// these records feed the study-day set alongside completions.
type UsageRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index:idx_usage_user_date,unique"`
	Date      string `gorm:"index:idx_usage_user_date,unique"` // DateKey form
	CreatedAt time.Time
}
