// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work and append notifications.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created by the ordering subsystem; this core reads them and
// writes only the courier, assignment time, status and status timestamps.
type OrderRepository interface {
	// Add persists a new order. Used by seeding and tests.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the courier, assignment time, status and status timestamps.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends (SELECT ... FOR UPDATE). It must run inside Begin/Commit.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// ListInTransitByCourier returns the courier's orders in picked_up or in_transit.
	ListInTransitByCourier(ctx context.Context, courierID int64) ([]*order.Order, error)

	// CountActiveByCourier counts non-terminal orders per courier.
	// Couriers without active orders are absent from the map.
	CountActiveByCourier(ctx context.Context, courierIDs []int64) (map[int64]int, error)

	// ListAwaitingCourier returns ids of ready, unassigned delivery orders,
	// oldest first.
	ListAwaitingCourier(ctx context.Context, limit int) ([]int64, error)
}
