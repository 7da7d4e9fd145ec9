package jobs

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/rs/zerolog"
)

// EventCleaner deletes events older than a horizon.
type EventCleaner interface {
	Handle(ctx context.Context, command commands.CleanupEventsCommand) (int64, error)
}

// EventRetentionJob keeps the realtime event log bounded.
type EventRetentionJob struct {
	cleaner   EventCleaner
	retention time.Duration
	logger    zerolog.Logger
}

func NewEventRetentionJob(cleaner EventCleaner, retention time.Duration, logger zerolog.Logger) *EventRetentionJob {
	return &EventRetentionJob{
		cleaner:   cleaner,
		retention: retention,
		logger:    logger.With().Str("component", "event_retention_job").Logger(),
	}
}

// Run deletes every event created more than retention ago.
func (j *EventRetentionJob) Run(ctx context.Context) error {
	command, err := commands.NewCleanupEventsCommand(j.retention)
	if err != nil {
		return err
	}

	deleted, err := j.cleaner.Handle(ctx, command)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.logger.Info().Int64("deleted", deleted).Dur("retention", j.retention).Msg("old events removed")
	}
	return nil
}
