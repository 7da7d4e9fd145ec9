// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases and never write.
package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRankCouriersQueryIsNotConstructed = errors.New(
	"RankCouriersQuery must be created via NewRankCouriersQuery constructor",
)

// RankCouriersQuery asks which couriers could take an order and in what order
// the dispatcher would consider them. Nothing is locked or assigned.
//
// Example:
//
//	query, err := NewRankCouriersQuery(42)
//	resp, err := handler.Handle(ctx, query)
//	if resp.Best != nil {
//	    fmt.Printf("best courier %d, %.1f min away\n", resp.Best.Courier.ID(), resp.Best.ETA.Minutes)
//	}
type RankCouriersQuery struct {
	orderID int64
	guard   guard.ConstructorGuard
}

// NewRankCouriersQuery creates the query for an order id.
func NewRankCouriersQuery(orderID int64) (RankCouriersQuery, error) {
	if orderID <= 0 {
		return RankCouriersQuery{}, errs.NewValueIsRequiredError("order_id")
	}
	return RankCouriersQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order to rank couriers for.
func (q RankCouriersQuery) OrderID() int64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q RankCouriersQuery) Validate() error {
	return q.guard.Validate(ErrRankCouriersQueryIsNotConstructed)
}
