// Package locationlogrepo stores the append-only courier trail.
package locationlogrepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/locationlog"

	"gorm.io/gorm"
)

// EntryDTO is one row of courier_location_log.
type EntryDTO struct {
	ID         int64 `gorm:"primaryKey"`
	OrderID    int64 `gorm:"index"`
	CourierID  int64
	Latitude   float64
	Longitude  float64
	Accuracy   *float64
	Heading    *float64
	Speed      *float64
	RecordedAt time.Time
}

// TableName specifies the database table name for trail entries.
func (EntryDTO) TableName() string {
	return "courier_location_log"
}

// GormLocationLogRepository implements ports.LocationLogRepository.
type GormLocationLogRepository struct {
	db *gorm.DB
}

func NewGormLocationLogRepository(db *gorm.DB) *GormLocationLogRepository {
	return &GormLocationLogRepository{db: db}
}

// Add inserts the entry and returns it with its id.
func (r *GormLocationLogRepository) Add(ctx context.Context, entry locationlog.Entry) (locationlog.Entry, error) {
	if err := entry.Position.Validate(); err != nil {
		return locationlog.Entry{}, err
	}

	loc := entry.Position.Location()
	dto := EntryDTO{
		OrderID:    entry.OrderID,
		CourierID:  entry.CourierID,
		Latitude:   loc.Latitude(),
		Longitude:  loc.Longitude(),
		Accuracy:   entry.Position.Accuracy(),
		Heading:    entry.Position.Heading(),
		Speed:      entry.Position.Speed(),
		RecordedAt: entry.RecordedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return locationlog.Entry{}, err
	}

	entry.ID = dto.ID
	return entry, nil
}
