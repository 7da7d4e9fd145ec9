package feed

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// Signal wakes waiting flows early. A nil Signal leaves them on the repoll
// interval alone.
type Signal interface {
	Wait() <-chan struct{}
}

// Service reads the event log on behalf of poll, stream and snapshot clients.
type Service struct {
	events ports.EventRepository
	signal Signal
	cfg    Config
	logger zerolog.Logger
}

// NewService creates a Service. signal may be nil.
func NewService(events ports.EventRepository, signal Signal, cfg Config, logger zerolog.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		events: events,
		signal: signal,
		cfg:    cfg,
		logger: logger.With().Str("component", "feed").Logger(),
	}, nil
}

// Config returns the timings the service runs with.
func (s *Service) Config() Config {
	return s.cfg
}

// Cursor resolves a client cursor. A nil cursor starts at the current head,
// so a fresh client only receives entries appended after it connected.
func (s *Service) Cursor(ctx context.Context, cursor *int64, filter event.Filter) (int64, error) {
	if cursor != nil {
		if *cursor < 0 {
			return 0, nil
		}
		return *cursor, nil
	}
	return s.events.LatestID(ctx, filter)
}

// PollResult is what a poll returns: possibly no events, and the cursor for
// the next call.
type PollResult struct {
	Events []event.Event
	LastID int64
}

// Poll waits up to timeout (capped at MaxPollWait) for entries after cursor
// and returns as soon as any exist.
//
// Returns:
//   - the entries and the advanced cursor, or none and the unchanged cursor
//     when the wait elapsed
//   - ctx.Err() when the client went away
func (s *Service) Poll(
	ctx context.Context,
	cursor *int64,
	filter event.Filter,
	timeout time.Duration,
) (PollResult, error) {
	from, err := s.Cursor(ctx, cursor, filter)
	if err != nil {
		return PollResult{}, err
	}

	timeout = min(max(timeout, 0), s.cfg.MaxPollWait)
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		batch, err := s.events.ReadAfter(ctx, from, filter, s.cfg.BatchSize)
		if err != nil {
			return PollResult{LastID: from}, err
		}
		if len(batch) > 0 {
			metrics.EventsDeliveredTotal.WithLabelValues("poll").Add(float64(len(batch)))
			return PollResult{Events: batch, LastID: event.LastID(from, batch)}, nil
		}

		select {
		case <-ctx.Done():
			return PollResult{LastID: from}, ctx.Err()
		case <-deadline.C:
			return PollResult{Events: []event.Event{}, LastID: from}, nil
		case <-s.wake():
		case <-time.After(s.cfg.PollInterval):
		}
	}
}

// Snapshot returns the newest limit entries in chronological order. A limit
// of zero or less means DefaultSnapshot; larger limits are capped at MaxSnapshot.
func (s *Service) Snapshot(ctx context.Context, filter event.Filter, limit int) ([]event.Event, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultSnapshot
	}
	limit = min(limit, s.cfg.MaxSnapshot)

	events, err := s.events.Recent(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}

func (s *Service) wake() <-chan struct{} {
	if s.signal == nil {
		return nil
	}
	return s.signal.Wait()
}
