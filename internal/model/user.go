package model

import "time"

// User ties reminders and usage history to a Telegram account. Every
// query in the repository layer is scoped to one user.
type User struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"uniqueIndex"`
	FirstName  string
	LastName   string
	Username   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
