// Package locationlog models the append-only trail of courier positions
// recorded while an order is being carried.
package locationlog

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
)

// Entry is one immutable position observation for an order and courier pair.
// ID is zero until stored.
type Entry struct {
	ID         int64
	OrderID    int64
	CourierID  int64
	Position   courier.Position
	RecordedAt time.Time
}

// NewEntry validates a new trail entry.
func NewEntry(orderID, courierID int64, position courier.Position, recordedAt time.Time) (Entry, error) {
	if orderID <= 0 {
		return Entry{}, errs.NewValueIsRequiredError("order_id")
	}
	if courierID <= 0 {
		return Entry{}, errs.NewValueIsRequiredError("courier_id")
	}
	if err := position.Validate(); err != nil {
		return Entry{}, err
	}

	return Entry{
		OrderID:    orderID,
		CourierID:  courierID,
		Position:   position,
		RecordedAt: recordedAt,
	}, nil
}
