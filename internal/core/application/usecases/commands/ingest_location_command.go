package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrIngestLocationCommandIsNotConstructed = errors.New(
	"IngestLocationCommand must be created via NewIngestLocationCommand constructor",
)

// IngestLocationCommand is one position report sent by a courier device.
//
// Example:
//
//	cmd, err := NewIngestLocationCommand(userID, 55.751, 37.618, nil, nil, nil, time.Now())
//	if err != nil {
//	    // coordinates out of range, nothing was written
//	}
type IngestLocationCommand struct {
	userID   int64
	position courier.Position
	guard    guard.ConstructorGuard
}

// NewIngestLocationCommand validates the report before anything is written.
//
// Parameters:
//   - userID: authenticated staff account of the courier
//   - lat, lng: reported point
//   - accuracy, speed, heading: optional device readings
//   - capturedAt: when the report was received
func NewIngestLocationCommand(
	userID int64,
	lat, lng float64,
	accuracy, speed, heading *float64,
	capturedAt time.Time,
) (IngestLocationCommand, error) {
	if userID <= 0 {
		return IngestLocationCommand{}, errs.NewValueIsRequiredError("user_id")
	}

	loc, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return IngestLocationCommand{}, err
	}

	pos, err := courier.NewPosition(loc, accuracy, heading, speed, capturedAt)
	if err != nil {
		return IngestLocationCommand{}, err
	}

	return IngestLocationCommand{
		userID:   userID,
		position: pos,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the account of the reporting courier.
func (c IngestLocationCommand) UserID() int64 {
	return c.userID
}

// Position returns the reported fix.
func (c IngestLocationCommand) Position() courier.Position {
	return c.position
}

// Validate ensures the command was created through the constructor.
func (c IngestLocationCommand) Validate() error {
	return c.guard.Validate(ErrIngestLocationCommandIsNotConstructed)
}
