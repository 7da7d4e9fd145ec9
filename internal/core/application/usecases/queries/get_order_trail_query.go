package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// MaxTrailPoints bounds a single trail read.
const MaxTrailPoints = 1000

var ErrGetOrderTrailQueryIsNotConstructed = errors.New(
	"GetOrderTrailQuery must be created via NewGetOrderTrailQuery constructor",
)

// GetOrderTrailQuery retrieves the recorded path of an order's courier,
// oldest point first.
type GetOrderTrailQuery struct {
	orderID int64
	limit   int
	guard   guard.ConstructorGuard
}

// NewGetOrderTrailQuery creates the query. A limit of 0 means MaxTrailPoints.
func NewGetOrderTrailQuery(orderID int64, limit int) (GetOrderTrailQuery, error) {
	if orderID <= 0 {
		return GetOrderTrailQuery{}, errs.NewValueIsRequiredError("order_id")
	}
	if limit < 0 || limit > MaxTrailPoints {
		return GetOrderTrailQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxTrailPoints)
	}
	if limit == 0 {
		limit = MaxTrailPoints
	}
	return GetOrderTrailQuery{orderID: orderID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order whose trail is read.
func (q GetOrderTrailQuery) OrderID() int64 {
	return q.orderID
}

// Limit returns the maximum number of points.
func (q GetOrderTrailQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrailQueryIsNotConstructed)
}

// TrailPoint is one entry of the courier location log.
type TrailPoint struct {
	CourierID  int64
	Location   kernel.Location
	Accuracy   *float64
	Heading    *float64
	Speed      *float64
	RecordedAt time.Time
}
