package queries

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"
)

// RankCouriersQueryResponse is the ranking of one order.
// Best is nil when no courier qualifies; Ranked is then empty.
type RankCouriersQueryResponse struct {
	OrderID int64
	Best    *services.RankedCourier
	Ranked  []services.RankedCourier
}

// RankCouriersQueryHandler previews dispatch decisions for staff.
// It reads the same candidate pool as auto-assign, without the row lock.
type RankCouriersQueryHandler struct {
	orders     ports.OrderRepository
	couriers   ports.CourierRepository
	dispatcher *services.OrderDispatcher
}

func NewRankCouriersQueryHandler(
	orders ports.OrderRepository,
	couriers ports.CourierRepository,
	dispatcher *services.OrderDispatcher,
) RankCouriersQueryHandler {
	return RankCouriersQueryHandler{orders: orders, couriers: couriers, dispatcher: dispatcher}
}

// Handle ranks the candidates of a delivery order.
//
// Returns:
//   - errs.ErrObjectNotFound when the order does not exist
//   - order.ErrNotDeliveryOrder for pickup and dine-in orders
func (h RankCouriersQueryHandler) Handle(ctx context.Context, query RankCouriersQuery) (RankCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RankCouriersQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return RankCouriersQueryResponse{}, err
	}
	if !o.IsDelivery() {
		return RankCouriersQueryResponse{}, order.ErrNotDeliveryOrder
	}

	candidates, err := commands.LoadCandidates(ctx, h.couriers, h.orders, o.RestaurantID())
	if err != nil {
		return RankCouriersQueryResponse{}, err
	}

	best, ranked, err := h.dispatcher.Best(ctx, o, candidates)
	if err != nil {
		return RankCouriersQueryResponse{}, err
	}
	metrics.RankedCandidates.Observe(float64(len(ranked)))

	return RankCouriersQueryResponse{OrderID: o.ID(), Best: best, Ranked: ranked}, nil
}
