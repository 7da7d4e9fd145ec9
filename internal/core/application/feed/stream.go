package feed

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/pkg/metrics"
)

// Sink receives the units of one stream. A write error means the client is
// gone and ends the stream.
type Sink interface {
	Event(e event.Event) error
	Heartbeat() error
	Reconnect(cursor int64) error
}

// StreamRequest describes one stream connection.
type StreamRequest struct {
	// Cursor is the last id the client has seen; nil starts at the head.
	Cursor *int64
	Filter event.Filter
	// Audience labels the connection gauge, e.g. "staff" or "public".
	Audience string
}

// Stream replays entries after the cursor, then keeps emitting new ones until
// the stream lifetime elapses, the client disconnects or a write fails.
//
// The stream ends with a Reconnect unit carrying the cursor when the lifetime
// elapses. A client disconnect ends it silently with a nil error.
//
// Loop outline:
//
//	drain ReadAfter(cursor) → Event for each entry
//	wait for: repoll tick | append signal | heartbeat | lifetime | ctx done
func (s *Service) Stream(ctx context.Context, req StreamRequest, sink Sink) error {
	cursor, err := s.Cursor(ctx, req.Cursor, req.Filter)
	if err != nil {
		return err
	}

	audience := req.Audience
	if audience == "" {
		audience = "staff"
	}
	gauge := metrics.StreamConnections.WithLabelValues(audience)
	gauge.Inc()
	defer gauge.Dec()

	lifetime := time.NewTimer(s.cfg.StreamLifetime)
	defer lifetime.Stop()
	heartbeat := time.NewTicker(s.cfg.HeartbeatInterval)
	defer heartbeat.Stop()
	repoll := time.NewTicker(s.cfg.PollInterval)
	defer repoll.Stop()

	log := s.logger.With().Str("audience", audience).Logger()
	log.Debug().Int64("cursor", cursor).Msg("stream opened")

	for {
		cursor, err = s.drain(ctx, cursor, req.Filter, sink)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			log.Debug().Int64("cursor", cursor).Msg("client disconnected")
			return nil
		case <-lifetime.C:
			log.Debug().Int64("cursor", cursor).Msg("stream lifetime elapsed")
			return sink.Reconnect(cursor)
		case <-heartbeat.C:
			if err := sink.Heartbeat(); err != nil {
				return err
			}
		case <-s.wake():
		case <-repoll.C:
		}
	}
}

// drain emits every entry after cursor and returns the advanced cursor.
func (s *Service) drain(ctx context.Context, cursor int64, filter event.Filter, sink Sink) (int64, error) {
	for {
		batch, err := s.events.ReadAfter(ctx, cursor, filter, s.cfg.BatchSize)
		if err != nil {
			return cursor, err
		}
		for _, e := range batch {
			if err := sink.Event(e); err != nil {
				return cursor, err
			}
			cursor = e.ID
		}
		metrics.EventsDeliveredTotal.WithLabelValues("stream").Add(float64(len(batch)))
		if len(batch) < s.cfg.BatchSize {
			return cursor, nil
		}
	}
}
