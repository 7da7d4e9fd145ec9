// Package eventrepo implements the ordered realtime event log on PostgreSQL.
//
// Appends take a transaction-scoped advisory lock before drawing an id from
// the sequence. The lock is held until the surrounding transaction ends, so
// entries become visible in id order and a reader that advanced its cursor
// past id N never sees an entry with id <= N appear later.
package eventrepo

import (
	"context"
	"slices"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/event"

	"gorm.io/gorm"
)

const (
	// NotifyChannel is the PostgreSQL NOTIFY channel raised on every append.
	NotifyChannel = "realtime_events"

	// appendLockKey identifies the advisory lock serialising appends.
	appendLockKey int64 = 0x6576656e74 // "event"
)

// EventDTO is one row of realtime_events.
type EventDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Channel      string `gorm:"size:100"`
	Event        string `gorm:"size:50"`
	Data         string `gorm:"type:jsonb"`
	RestaurantID *int64
	CreatedAt    time.Time
}

// TableName specifies the database table name for event entries.
func (EventDTO) TableName() string {
	return "realtime_events"
}

func (dto EventDTO) toDomain() event.Event {
	return event.Event{
		ID:           dto.ID,
		Channel:      dto.Channel,
		Type:         event.Type(dto.Event),
		Payload:      []byte(dto.Data),
		RestaurantID: dto.RestaurantID,
		CreatedAt:    dto.CreatedAt.UTC(),
	}
}

// GormEventRepository implements ports.EventRepository.
type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append stores e. Inside an open transaction it runs in a savepoint and the
// entry becomes visible on commit; otherwise it commits on its own.
func (r *GormEventRepository) Append(ctx context.Context, e event.Event) (event.Event, error) {
	draft, err := event.New(e.Channel, e.Type, e.Payload, e.RestaurantID)
	if err != nil {
		return event.Event{}, err
	}

	dto := EventDTO{
		Channel:      draft.Channel,
		Event:        string(draft.Type),
		Data:         string(draft.Payload),
		RestaurantID: draft.RestaurantID,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", appendLockKey).Error; err != nil {
			return err
		}
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		return tx.Exec("SELECT pg_notify(?, ?)", NotifyChannel, strconv.FormatInt(dto.ID, 10)).Error
	})
	if err != nil {
		return event.Event{}, err
	}

	return dto.toDomain(), nil
}

// ReadAfter returns up to limit entries with id > cursor, ascending.
func (r *GormEventRepository) ReadAfter(ctx context.Context, cursor int64, filter event.Filter, limit int) ([]event.Event, error) {
	var dtos []EventDTO
	err := r.filtered(ctx, filter).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos), nil
}

// Recent returns the newest limit entries in chronological order.
func (r *GormEventRepository) Recent(ctx context.Context, filter event.Filter, limit int) ([]event.Event, error) {
	var dtos []EventDTO
	err := r.filtered(ctx, filter).
		Order("id DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	slices.Reverse(dtos)
	return toDomainList(dtos), nil
}

// LatestID returns the largest matching id or 0.
func (r *GormEventRepository) LatestID(ctx context.Context, filter event.Filter) (int64, error) {
	var latest int64
	err := r.filtered(ctx, filter).
		Select("COALESCE(MAX(id), 0)").
		Scan(&latest).Error
	return latest, err
}

// DeleteOlderThan removes entries created before horizon.
func (r *GormEventRepository) DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", horizon).Delete(&EventDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormEventRepository) filtered(ctx context.Context, filter event.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&EventDTO{})
	if len(filter.Channels) > 0 {
		q = q.Where("channel IN ?", filter.Channels)
	}
	if filter.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", *filter.RestaurantID)
	}
	return q
}

func toDomainList(dtos []EventDTO) []event.Event {
	out := make([]event.Event, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain())
	}
	return out
}
