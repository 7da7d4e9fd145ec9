package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/metrics"
)

// Reason explains why an auto-assign did not attach a courier.
type Reason string

const (
	ReasonNoCouriersAvailable Reason = "no_couriers_available"
	ReasonAlreadyAssigned     Reason = "already_assigned"
	ReasonNotDeliveryOrder    Reason = "not_delivery_order"
	ReasonInvalidStatus       Reason = "invalid_status"
)

// AutoAssignResult is the outcome of an auto-assign. A negative outcome is a
// regular result with Success=false and a Reason, never an error.
type AutoAssignResult struct {
	Success  bool
	Reason   Reason
	OrderID  int64
	Assigned *services.RankedCourier
	Ranked   []services.RankedCourier
}

// AutoAssignCommandHandler attaches the best courier to an order under a row
// lock on that order.
//
// Transaction outline:
//
//	BEGIN
//	SELECT ... FROM orders WHERE id = $1 FOR UPDATE
//	-- precondition checks, ranking
//	UPDATE orders SET courier_id = ..., courier_assigned_at = ...
//	INSERT INTO realtime_events ... -- tracking_{id} and delivery
//	COMMIT
//
// A concurrent call for the same order blocks on the lock, then sees the
// courier written by the winner and reports ReasonAlreadyAssigned.
type AutoAssignCommandHandler struct {
	uowFactory UoWFactory
	dispatcher *services.OrderDispatcher
	notifier   ports.AppendNotifier
	now        func() time.Time
}

// NewAutoAssignCommandHandler creates the handler. notifier may be nil.
func NewAutoAssignCommandHandler(
	uowFactory UoWFactory,
	dispatcher *services.OrderDispatcher,
	notifier ports.AppendNotifier,
) AutoAssignCommandHandler {
	return AutoAssignCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifierOrNoop(notifier),
		now:        time.Now,
	}
}

// WithClock replaces the time source.
func (h AutoAssignCommandHandler) WithClock(now func() time.Time) AutoAssignCommandHandler {
	h.now = now
	return h
}

// Handle runs the assignment. Errors are reserved for a missing order and
// infrastructure failures.
func (h AutoAssignCommandHandler) Handle(ctx context.Context, command AutoAssignCommand) (AutoAssignResult, error) {
	if err := command.Validate(); err != nil {
		return AutoAssignResult{}, err
	}

	result := AutoAssignResult{OrderID: command.OrderID()}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	o, err := ordersRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return result, err
	}

	if err := o.CheckAssignable(); err != nil {
		return h.negative(result, err)
	}

	candidates, err := LoadCandidates(ctx, uow.CourierRepository(), ordersRepo, o.RestaurantID())
	if err != nil {
		return result, err
	}

	at := h.now().UTC()
	best, ranked, err := h.dispatcher.Dispatch(ctx, o, candidates, at)
	result.Ranked = ranked
	metrics.RankedCandidates.Observe(float64(len(ranked)))
	if err != nil {
		return h.negative(result, err)
	}

	if err := ordersRepo.Update(ctx, o); err != nil {
		return result, err
	}

	events := uow.EventRepository()
	payload := event.CourierAssignedPayload{
		OrderID:     o.ID(),
		CourierID:   best.Courier.ID(),
		CourierName: best.Courier.MaskedName(),
		Transport:   best.Courier.Transport().String(),
		Score:       best.KnownScore(),
		ETA:         best.ETA.Payload(),
		AssignedAt:  at,
	}
	restaurantID := o.RestaurantID()
	for _, channel := range []string{event.TrackingChannel(o.ID()), event.DeliveryChannel} {
		e, err := event.NewJSON(channel, event.CourierAssigned, payload, &restaurantID)
		if err != nil {
			return result, err
		}
		if _, err := events.Append(ctx, e); err != nil {
			return result, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return result, err
	}

	h.notifier.Notify()
	metrics.AutoAssignTotal.WithLabelValues("assigned").Inc()
	metrics.EventsAppendedTotal.WithLabelValues(string(event.CourierAssigned)).Add(2)

	result.Success = true
	result.Assigned = &best
	return result, nil
}

// negative converts a domain refusal into a result. Other errors pass through.
func (h AutoAssignCommandHandler) negative(result AutoAssignResult, err error) (AutoAssignResult, error) {
	switch {
	case errors.Is(err, order.ErrAlreadyAssigned):
		result.Reason = ReasonAlreadyAssigned
	case errors.Is(err, order.ErrNotDeliveryOrder):
		result.Reason = ReasonNotDeliveryOrder
	case errors.Is(err, order.ErrStatusNotAssignable):
		result.Reason = ReasonInvalidStatus
	case errors.Is(err, services.ErrCourierNotFound):
		result.Reason = ReasonNoCouriersAvailable
	default:
		return result, err
	}

	metrics.AutoAssignTotal.WithLabelValues(string(result.Reason)).Inc()
	return result, nil
}

// LoadCandidates reads the restaurant's courier pool with the active order
// count of every courier.
func LoadCandidates(
	ctx context.Context,
	couriers ports.CourierRepository,
	orders ports.OrderRepository,
	restaurantID int64,
) ([]services.Candidate, error) {
	pool, err := couriers.ListCandidates(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(pool))
	for _, c := range pool {
		ids = append(ids, c.ID())
	}
	active, err := orders.CountActiveByCourier(ctx, ids)
	if err != nil {
		return nil, err
	}

	return toCandidates(pool, active), nil
}

func toCandidates(pool []*courier.Courier, active map[int64]int) []services.Candidate {
	out := make([]services.Candidate, 0, len(pool))
	for _, c := range pool {
		out = append(out, services.Candidate{Courier: c, ActiveOrders: active[c.ID()]})
	}
	return out
}
