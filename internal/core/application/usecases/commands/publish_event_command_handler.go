package commands

import (
	"context"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"
)

// PublishEventCommandHandler appends a single entry outside any business transaction.
type PublishEventCommandHandler struct {
	events   ports.EventRepository
	notifier ports.AppendNotifier
}

// NewPublishEventCommandHandler creates the handler. notifier may be nil.
func NewPublishEventCommandHandler(events ports.EventRepository, notifier ports.AppendNotifier) PublishEventCommandHandler {
	return PublishEventCommandHandler{events: events, notifier: notifierOrNoop(notifier)}
}

// Handle returns the stored entry with its id.
func (h PublishEventCommandHandler) Handle(ctx context.Context, command PublishEventCommand) (event.Event, error) {
	if err := command.Validate(); err != nil {
		return event.Event{}, err
	}

	stored, err := h.events.Append(ctx, command.Draft())
	if err != nil {
		return event.Event{}, err
	}

	h.notifier.Notify()
	metrics.EventsAppendedTotal.WithLabelValues(string(stored.Type)).Inc()
	return stored, nil
}
