package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderRestaurantQueryIsNotConstructed = errors.New(
	"GetOrderRestaurantQuery must be created via NewGetOrderRestaurantQuery constructor",
)

// GetOrderRestaurantQuery asks which restaurant owns an order, so access to
// order-keyed endpoints can be checked before anything else runs.
type GetOrderRestaurantQuery struct {
	orderID int64
	guard   guard.ConstructorGuard
}

func NewGetOrderRestaurantQuery(orderID int64) (GetOrderRestaurantQuery, error) {
	if orderID <= 0 {
		return GetOrderRestaurantQuery{}, errs.NewValueIsRequiredError("order_id")
	}
	return GetOrderRestaurantQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order to look up.
func (q GetOrderRestaurantQuery) OrderID() int64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRestaurantQueryIsNotConstructed)
}
