package queries

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// TrackingCourier is what a customer may learn about the courier.
// Location is set only while the order is on its way.
type TrackingCourier struct {
	Name      string
	Phone     string
	Transport courier.Transport
	Location  *kernel.Location
}

// TrackingView is the public read model of one order.
type TrackingView struct {
	OrderID           int64
	Channel           string
	Status            order.Status
	StatusLabel       string
	StatusColor       string
	Destination       *kernel.Location
	Address           string
	Courier           *TrackingCourier
	ETA               services.Estimate
	StatusTimes       map[order.Status]time.Time
	CourierAssignedAt *time.Time
}

// TrackingViewQueryHandler serves public tracking pages.
//
// A token is accepted only when it exists, is active, has not expired and
// points at an existing order. Every rejection is reported as
// tracking.ErrTrackingDenied so a viewer cannot tell the cases apart.
// Storage failures are returned unchanged.
type TrackingViewQueryHandler struct {
	tokens    ports.TrackingTokenRepository
	orders    ports.OrderRepository
	couriers  ports.CourierRepository
	estimator services.ETAEstimator
	now       func() time.Time
}

func NewTrackingViewQueryHandler(
	tokens ports.TrackingTokenRepository,
	orders ports.OrderRepository,
	couriers ports.CourierRepository,
	estimator services.ETAEstimator,
) TrackingViewQueryHandler {
	return TrackingViewQueryHandler{
		tokens:    tokens,
		orders:    orders,
		couriers:  couriers,
		estimator: estimator,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for expiry checks.
func (h TrackingViewQueryHandler) WithClock(now func() time.Time) TrackingViewQueryHandler {
	h.now = now
	return h
}

// Authorize validates a token and returns the order it grants access to.
// Stream and poll endpoints call it before subscribing to the order channel.
func (h TrackingViewQueryHandler) Authorize(ctx context.Context, query TrackingViewQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	token, err := h.tokens.Get(ctx, query.Token())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, tracking.ErrTrackingDenied
	}
	if err != nil {
		return nil, err
	}
	if !token.IsValid(h.now()) {
		return nil, tracking.ErrTrackingDenied
	}

	o, err := h.orders.Get(ctx, token.OrderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, tracking.ErrTrackingDenied
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Handle builds the tracking page. The ETA is computed from the courier's
// last position and is unknown when either point is missing.
func (h TrackingViewQueryHandler) Handle(ctx context.Context, query TrackingViewQuery) (TrackingView, error) {
	o, err := h.Authorize(ctx, query)
	if err != nil {
		return TrackingView{}, err
	}

	view := TrackingView{
		OrderID:           o.ID(),
		Channel:           event.TrackingChannel(o.ID()),
		Status:            o.Status(),
		StatusLabel:       o.Status().Label(),
		StatusColor:       o.Status().Color(),
		Destination:       o.Destination(),
		Address:           o.Address(),
		ETA:               services.Unknown,
		StatusTimes:       o.StatusTimes(),
		CourierAssignedAt: o.CourierAssignedAt(),
	}

	if o.Courier() == nil {
		return view, nil
	}
	c, err := h.couriers.Get(ctx, *o.Courier())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return view, nil
	}
	if err != nil {
		return TrackingView{}, err
	}

	view.Courier = &TrackingCourier{
		Name:      c.MaskedName(),
		Phone:     c.MaskedPhone(),
		Transport: c.Transport(),
	}
	if o.Status().IsTerminal() {
		return view, nil
	}

	from := services.LastKnownLocation(c)
	if o.Status().IsInTransit() {
		view.Courier.Location = from
	}
	view.ETA = h.estimator.Estimate(ctx, from, o.Destination(), c.Transport())
	return view, nil
}
