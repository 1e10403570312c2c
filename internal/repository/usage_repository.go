package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study-reminders/internal/model"
)

// UsageRepository stores one engagement record per user per calendar day.
type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// RecordDay inserts the day's record if absent. Repeat visits within a
// day are a no-op, mirroring the unique (user, date) index.
func (r *UsageRepository) RecordDay(ctx context.Context, userID uint, date string) error {
	var existing model.UsageRecord
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error
	switch {
	case err == nil:
		return nil
	case err == gorm.ErrRecordNotFound:
		record := model.UsageRecord{UserID: userID, Date: date}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("record usage: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find usage: %w", err)
	}
}

// ListDates returns every recorded engagement date for the user.
func (r *UsageRepository) ListDates(ctx context.Context, userID uint) ([]string, error) {
	var dates []string
	if err := r.db.WithContext(ctx).Model(&model.UsageRecord{}).
		Where("user_id = ?", userID).Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}
