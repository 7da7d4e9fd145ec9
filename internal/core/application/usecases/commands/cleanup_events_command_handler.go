package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"
)

// CleanupEventsCommandHandler runs the retention sweep. Removing old entries
// never affects clients reading after a recent cursor.
type CleanupEventsCommandHandler struct {
	events ports.EventRepository
	now    func() time.Time
}

func NewCleanupEventsCommandHandler(events ports.EventRepository) CleanupEventsCommandHandler {
	return CleanupEventsCommandHandler{events: events, now: time.Now}
}

// WithClock replaces the time source.
func (h CleanupEventsCommandHandler) WithClock(now func() time.Time) CleanupEventsCommandHandler {
	h.now = now
	return h
}

// Handle returns the number of deleted entries.
func (h CleanupEventsCommandHandler) Handle(ctx context.Context, command CleanupEventsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	deleted, err := h.events.DeleteOlderThan(ctx, h.now().Add(-command.Retention()))
	if err != nil {
		return 0, err
	}

	metrics.EventsDeletedTotal.Add(float64(deleted))
	return deleted, nil
}
