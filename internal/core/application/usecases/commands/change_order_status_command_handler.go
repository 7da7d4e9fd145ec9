package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"
)

// ErrOrderNotAssignedToCourier is returned when a courier touches an order it does not carry.
var ErrOrderNotAssignedToCourier = errors.New("order is not assigned to this courier")

// courierSettableStatuses are the statuses a courier may set from the app.
var courierSettableStatuses = map[order.Status]struct{}{
	order.PickedUp:  {},
	order.InTransit: {},
	order.Delivered: {},
	order.Cancelled: {},
}

// ChangeOrderStatusCommandHandler applies a courier's status update under the
// same row lock as auto-assign. It never writes the courier field.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.AppendNotifier
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates the handler. notifier may be nil.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.AppendNotifier) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifierOrNoop(notifier),
		now:        time.Now,
	}
}

// WithClock replaces the time source.
func (h ChangeOrderStatusCommandHandler) WithClock(now func() time.Time) ChangeOrderStatusCommandHandler {
	h.now = now
	return h
}

// Handle returns the updated order.
//
// Returns:
//   - ErrNotCourier when the account has no courier profile
//   - courier.ErrCourierInactive for a deactivated courier
//   - ErrOrderNotAssignedToCourier when the order is carried by someone else
//   - order.ErrInvalidTransition when the lifecycle does not allow the change
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if _, ok := courierSettableStatuses[command.Status()]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("couriers may set picked_up, in_transit, delivered or cancelled"))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CourierRepository().GetByUserID(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotCourier
	}
	if err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, courier.ErrCourierInactive
	}

	ordersRepo := uow.OrderRepository()
	o, err := ordersRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if o.Courier() == nil || *o.Courier() != c.ID() {
		return nil, ErrOrderNotAssignedToCourier
	}

	at := h.now().UTC()
	if err := o.ChangeStatus(command.Status(), at); err != nil {
		return nil, err
	}
	if err := ordersRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	restaurantID := o.RestaurantID()
	payload := event.OrderStatusPayload{
		OrderID:   o.ID(),
		Status:    o.Status().String(),
		Label:     o.Status().Label(),
		Color:     o.Status().Color(),
		ChangedAt: at,
	}
	events := uow.EventRepository()
	for _, channel := range []string{event.TrackingChannel(o.ID()), event.DeliveryChannel} {
		e, err := event.NewJSON(channel, event.OrderStatus, payload, &restaurantID)
		if err != nil {
			return nil, err
		}
		if _, err := events.Append(ctx, e); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify()
	metrics.EventsAppendedTotal.WithLabelValues(string(event.OrderStatus)).Add(2)
	return o, nil
}
