package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves the courier board of one restaurant: every
// courier with its live status, last position and current load.
//
// Example:
//
//	query, _ := NewListCouriersQuery(restaurantID)
//	couriers, err := handler.Handle(ctx, query)
//	for _, c := range couriers {
//	    fmt.Printf("%s %s carrying %d\n", c.Name, c.Status, c.ActiveOrders)
//	}
type ListCouriersQuery struct {
	restaurantID int64
	guard        guard.ConstructorGuard
}

// NewListCouriersQuery creates the query for a restaurant.
func NewListCouriersQuery(restaurantID int64) (ListCouriersQuery, error) {
	if restaurantID <= 0 {
		return ListCouriersQuery{}, errs.NewValueIsRequiredError("restaurant_id")
	}
	return ListCouriersQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// RestaurantID returns the restaurant whose couriers are listed.
func (q ListCouriersQuery) RestaurantID() int64 {
	return q.restaurantID
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// ListCouriersQueryResponse is one row of the courier board.
// Location is nil for a courier that never reported a position.
type ListCouriersQueryResponse struct {
	ID           int64
	Name         string
	Active       bool
	Status       courier.Status
	Transport    courier.Transport
	Location     *kernel.Location
	LastSeenAt   *time.Time
	ActiveOrders int
}
