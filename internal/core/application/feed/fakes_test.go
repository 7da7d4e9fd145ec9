package feed_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/event"
)

// memoryLog is an in-memory event log with the ordering of the real one.
type memoryLog struct {
	mu      sync.Mutex
	entries []event.Event
	failing error
}

func (l *memoryLog) append(channel string) event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := event.Event{
		ID:        int64(len(l.entries) + 1),
		Channel:   channel,
		Type:      "test",
		Payload:   []byte(`{}`),
		CreatedAt: time.Now(),
	}
	l.entries = append(l.entries, e)
	return e
}

func (l *memoryLog) Append(_ context.Context, e event.Event) (event.Event, error) {
	return l.append(e.Channel), nil
}

func (l *memoryLog) ReadAfter(_ context.Context, cursor int64, filter event.Filter, limit int) ([]event.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failing != nil {
		return nil, l.failing
	}
	var out []event.Event
	for _, e := range l.entries {
		if e.ID > cursor && filter.Matches(e) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (l *memoryLog) Recent(_ context.Context, filter event.Filter, limit int) ([]event.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var matched []event.Event
	for _, e := range l.entries {
		if filter.Matches(e) {
			matched = append(matched, e)
		}
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

func (l *memoryLog) LatestID(_ context.Context, filter event.Filter) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var latest int64
	for _, e := range l.entries {
		if filter.Matches(e) {
			latest = e.ID
		}
	}
	return latest, nil
}

func (l *memoryLog) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

var errClientGone = errors.New("client gone")

// recordingSink collects stream units in arrival order.
type recordingSink struct {
	mu         sync.Mutex
	ids        []int64
	heartbeats int
	reconnect  *int64
	failAfter  int
}

func (s *recordingSink) Event(e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAfter > 0 && len(s.ids) >= s.failAfter {
		return errClientGone
	}
	s.ids = append(s.ids, e.ID)
	return nil
}

func (s *recordingSink) Heartbeat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heartbeats++
	return nil
}

func (s *recordingSink) Reconnect(cursor int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconnect = &cursor
	return nil
}

func (s *recordingSink) snapshot() ([]int64, int, *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.ids...), s.heartbeats, s.reconnect
}
