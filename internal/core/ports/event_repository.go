package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
)

// EventRepository is the ordered, append-only realtime event log.
//
// Identifiers grow strictly with commit order: an entry that becomes visible
// never has a smaller id than an entry visible before it. Readers can
// therefore advance a cursor to the largest id seen without missing entries.
type EventRepository interface {
	// Append stores e and returns it with its id and creation time.
	Append(ctx context.Context, e event.Event) (event.Event, error)

	// ReadAfter returns up to limit entries with id > cursor in ascending order.
	ReadAfter(ctx context.Context, cursor int64, filter event.Filter, limit int) ([]event.Event, error)

	// Recent returns the newest limit matching entries in ascending order.
	Recent(ctx context.Context, filter event.Filter, limit int) ([]event.Event, error)

	// LatestID returns the largest id matching filter, 0 for an empty log.
	LatestID(ctx context.Context, filter event.Filter) (int64, error)

	// DeleteOlderThan removes entries created before horizon and returns how many.
	DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error)
}

// AppendNotifier wakes waiting readers after new entries were committed.
type AppendNotifier interface {
	Notify()
}
