package commands

import (
	"errors"
	"math"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCleanupEventsCommandIsNotConstructed = errors.New(
	"CleanupEventsCommand must be created via NewCleanupEventsCommand constructor",
)

// CleanupEventsCommand removes event log entries older than the retention.
type CleanupEventsCommand struct {
	retention time.Duration
	guard     guard.ConstructorGuard
}

// NewCleanupEventsCommand requires a positive retention.
func NewCleanupEventsCommand(retention time.Duration) (CleanupEventsCommand, error) {
	if retention <= 0 {
		return CleanupEventsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, time.Nanosecond, time.Duration(math.MaxInt64))
	}
	return CleanupEventsCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

// Retention returns how long events are kept; older ones are deleted.
func (c CleanupEventsCommand) Retention() time.Duration {
	return c.retention
}

// Validate ensures the command was created through the constructor.
func (c CleanupEventsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupEventsCommandIsNotConstructed)
}
