package postgres

import (
	"context"
	"time"

	"dispatch/internal/adapters/out/postgres/eventrepo"
	"dispatch/internal/core/ports"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// AppendListener relays NOTIFY messages raised by event appends on any
// instance to a local AppendNotifier. Waiting readers repoll on a timer as
// well, so a lost notification only delays delivery.
type AppendListener struct {
	dsn      string
	notifier ports.AppendNotifier
	logger   zerolog.Logger
}

func NewAppendListener(dsn string, notifier ports.AppendNotifier, logger zerolog.Logger) *AppendListener {
	return &AppendListener{
		dsn:      dsn,
		notifier: notifier,
		logger:   logger.With().Str("component", "append_listener").Logger(),
	}
}

// Run listens until ctx is cancelled.
func (l *AppendListener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			l.logger.Warn().Err(err).Int("event", int(ev)).Msg("listener connection event")
		}
	})
	defer listener.Close()

	if err := listener.Listen(eventrepo.NotifyChannel); err != nil {
		return err
	}
	l.logger.Info().Str("channel", eventrepo.NotifyChannel).Msg("listening for appends")

	health := time.NewTicker(90 * time.Second)
	defer health.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-listener.Notify:
			// a nil notification follows a reconnect; wake readers in both cases
			l.notifier.Notify()
		case <-health.C:
			if err := listener.Ping(); err != nil {
				l.logger.Warn().Err(err).Msg("listener ping failed")
			}
		}
	}
}
