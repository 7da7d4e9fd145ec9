package event

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

// Type tags what happened.
type Type string

const (
	CourierLocation Type = "courier_location"
	CourierAssigned Type = "courier_assigned"
	OrderStatus     Type = "order_status"
)

const (
	// DeliveryChannel carries dispatch events for staff dashboards.
	DeliveryChannel = "delivery"

	trackingPrefix = "tracking_"

	// MaxChannelLength and MaxTypeLength bound the stored text columns.
	MaxChannelLength = 100
	MaxTypeLength    = 50
)

// TrackingChannel names the channel of a single order.
func TrackingChannel(orderID int64) string {
	return trackingPrefix + strconv.FormatInt(orderID, 10)
}

// OrderIDFromChannel reverses TrackingChannel.
func OrderIDFromChannel(channel string) (int64, bool) {
	rest, ok := strings.CutPrefix(channel, trackingPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Event is one stored log entry. ID is zero until the entry is appended.
type Event struct {
	ID           int64
	Channel      string
	Type         Type
	Payload      json.RawMessage
	RestaurantID *int64
	CreatedAt    time.Time
}

// New validates a draft event. A nil or empty payload becomes {}.
//
// Example:
//
//	e, err := event.New(event.TrackingChannel(42), event.CourierLocation, payload, &restaurantID)
func New(channel string, typ Type, payload json.RawMessage, restaurantID *int64) (Event, error) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return Event{}, errs.NewValueIsRequiredError("channel")
	}
	if len(channel) > MaxChannelLength {
		return Event{}, errs.NewValueIsOutOfRangeError("channel length", len(channel), 1, MaxChannelLength)
	}
	if typ == "" {
		return Event{}, errs.NewValueIsRequiredError("event")
	}
	if len(typ) > MaxTypeLength {
		return Event{}, errs.NewValueIsOutOfRangeError("event length", len(typ), 1, MaxTypeLength)
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return Event{}, errs.NewValueIsInvalidErrorWithCause("data", fmt.Errorf("payload is not valid JSON"))
	}

	return Event{
		Channel:      channel,
		Type:         typ,
		Payload:      payload,
		RestaurantID: restaurantID,
	}, nil
}

// NewJSON marshals payload and calls New.
func NewJSON(channel string, typ Type, payload any, restaurantID *int64) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, errs.NewValueIsInvalidErrorWithCause("data", err)
	}
	return New(channel, typ, raw, restaurantID)
}

// Filter narrows a read. Empty Channels and nil RestaurantID match everything.
type Filter struct {
	Channels     []string
	RestaurantID *int64
}

// Matches reports whether e passes the filter.
func (f Filter) Matches(e Event) bool {
	if f.RestaurantID != nil && (e.RestaurantID == nil || *e.RestaurantID != *f.RestaurantID) {
		return false
	}
	if len(f.Channels) == 0 {
		return true
	}
	for _, c := range f.Channels {
		if c == e.Channel {
			return true
		}
	}
	return false
}

// ParseChannels splits a comma separated list, dropping blanks and duplicates.
func ParseChannels(s string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

// LastID returns the highest id in events, or cursor when events is empty.
func LastID(cursor int64, events []Event) int64 {
	for _, e := range events {
		if e.ID > cursor {
			cursor = e.ID
		}
	}
	return cursor
}
