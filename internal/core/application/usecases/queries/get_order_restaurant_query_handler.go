package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetOrderRestaurantQueryHandler resolves the owning restaurant of an order.
type GetOrderRestaurantQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderRestaurantQueryHandler(orders ports.OrderRepository) GetOrderRestaurantQueryHandler {
	return GetOrderRestaurantQueryHandler{orders: orders}
}

// Handle returns the restaurant id, or errs.ErrObjectNotFound for an unknown order.
func (h GetOrderRestaurantQueryHandler) Handle(ctx context.Context, query GetOrderRestaurantQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return 0, err
	}
	return o.RestaurantID(), nil
}
