// Package tracking holds the capability tokens behind public order tracking pages.
package tracking

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrTrackingDenied is the only error a public viewer ever sees. It covers a
// malformed, unknown, inactive or expired token and a token whose order is gone.
var ErrTrackingDenied = errors.New("tracking link is invalid or expired")

// Token binds one order to an unauthenticated viewer.
// Tokens are issued by another subsystem and only read here.
type Token struct {
	Value     kernel.UUID
	OrderID   int64
	Active    bool
	ExpiresAt *time.Time
}

// ParseValue checks the token format before any storage lookup.
func ParseValue(raw string) (kernel.UUID, error) {
	v, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, ErrTrackingDenied
	}
	return v, nil
}

// IsValid reports whether the token may be used at now.
// A nil ExpiresAt never expires.
func (t Token) IsValid(now time.Time) bool {
	if t.Value.Validate() != nil || t.OrderID <= 0 || !t.Active {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}
