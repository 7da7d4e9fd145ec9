package commands

import (
	"encoding/json"
	"errors"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/pkg/guard"
)

var ErrPublishEventCommandIsNotConstructed = errors.New(
	"PublishEventCommand must be created via NewPublishEventCommand constructor",
)

// PublishEventCommand appends an arbitrary entry to the event log. It backs the
// operator send-event endpoint.
type PublishEventCommand struct {
	draft event.Event
	guard guard.ConstructorGuard
}

// NewPublishEventCommand validates channel, type and JSON payload.
func NewPublishEventCommand(channel, eventType string, data json.RawMessage, restaurantID *int64) (PublishEventCommand, error) {
	draft, err := event.New(channel, event.Type(eventType), data, restaurantID)
	if err != nil {
		return PublishEventCommand{}, err
	}
	return PublishEventCommand{draft: draft, guard: guard.NewConstructorGuard()}, nil
}

// Draft returns the event to append. ID and CreatedAt are assigned on insert.
func (c PublishEventCommand) Draft() event.Event {
	return c.draft
}

// Validate ensures the command was created through the constructor.
func (c PublishEventCommand) Validate() error {
	return c.guard.Validate(ErrPublishEventCommandIsNotConstructed)
}
