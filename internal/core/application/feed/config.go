package feed

import (
	"time"

	"dispatch/internal/pkg/errs"
)

// Config holds the timings and limits of the distribution surfaces.
type Config struct {
	// PollInterval is how often a waiting flow rereads the log.
	PollInterval time.Duration
	// HeartbeatInterval separates keep-alive units on a stream.
	HeartbeatInterval time.Duration
	// StreamLifetime is how long a stream runs before asking the client to reconnect.
	StreamLifetime time.Duration
	// MaxPollWait caps the wait a poll client may request.
	MaxPollWait time.Duration
	// BatchSize bounds a single log read.
	BatchSize int
	// DefaultSnapshot and MaxSnapshot bound the snapshot size.
	DefaultSnapshot int
	MaxSnapshot     int
}

func DefaultConfig() Config {
	return Config{
		PollInterval:      500 * time.Millisecond,
		HeartbeatInterval: 15 * time.Second,
		StreamLifetime:    55 * time.Second,
		MaxPollWait:       30 * time.Second,
		BatchSize:         100,
		DefaultSnapshot:   50,
		MaxSnapshot:       200,
	}
}

// Validate rejects non-positive timings and limits.
func (c Config) Validate() error {
	switch {
	case c.PollInterval <= 0:
		return errs.NewValueIsInvalidError("poll_interval")
	case c.HeartbeatInterval <= 0:
		return errs.NewValueIsInvalidError("heartbeat_interval")
	case c.StreamLifetime <= 0:
		return errs.NewValueIsInvalidError("stream_lifetime")
	case c.MaxPollWait < 0:
		return errs.NewValueIsInvalidError("max_poll_wait")
	case c.BatchSize <= 0:
		return errs.NewValueIsInvalidError("batch_size")
	case c.DefaultSnapshot <= 0 || c.MaxSnapshot < c.DefaultSnapshot:
		return errs.NewValueIsInvalidError("snapshot_limits")
	}
	return nil
}
