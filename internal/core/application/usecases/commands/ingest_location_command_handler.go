package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/locationlog"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// ErrNotCourier is returned when the caller's account has no courier profile.
var ErrNotCourier = errors.New("account is not a courier")

// IngestLocationResult tells the device how many orders it is carrying.
type IngestLocationResult struct {
	CourierID    int64
	ActiveOrders int
}

// IngestLocationCommandHandler stores a courier position and fans it out to
// every order the courier is carrying.
//
// Processing order:
//  1. the courier snapshot and last seen time are saved and committed
//  2. for each picked_up or in_transit order, in its own transaction:
//     a location log row, an ETA recompute and a courier_location event
//
// A failure in step 2 is logged and skipped; the other orders and the
// response are not affected.
type IngestLocationCommandHandler struct {
	uowFactory UoWFactory
	estimator  services.ETAEstimator
	notifier   ports.AppendNotifier
	logger     zerolog.Logger
}

// NewIngestLocationCommandHandler creates the handler. notifier may be nil.
func NewIngestLocationCommandHandler(
	uowFactory UoWFactory,
	estimator services.ETAEstimator,
	notifier ports.AppendNotifier,
	logger zerolog.Logger,
) IngestLocationCommandHandler {
	return IngestLocationCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		notifier:   notifierOrNoop(notifier),
		logger:     logger.With().Str("component", "location_ingestion").Logger(),
	}
}

// Handle processes one report.
//
// Returns:
//   - ErrNotCourier when the account has no courier profile
//   - courier.ErrCourierInactive for a deactivated courier
func (h IngestLocationCommandHandler) Handle(ctx context.Context, command IngestLocationCommand) (IngestLocationResult, error) {
	if err := command.Validate(); err != nil {
		return IngestLocationResult{}, err
	}

	c, err := h.saveSnapshot(ctx, command)
	if err != nil {
		return IngestLocationResult{}, err
	}
	metrics.LocationPingsTotal.Inc()

	orders, err := h.uowFactory.Create().OrderRepository().ListInTransitByCourier(ctx, c.ID())
	if err != nil {
		return IngestLocationResult{}, err
	}

	published := 0
	for _, o := range orders {
		if err := h.fanOut(ctx, c, o, command.Position()); err != nil {
			h.logger.Error().Err(err).
				Int64("courier_id", c.ID()).
				Int64("order_id", o.ID()).
				Msg("location fan-out failed")
			continue
		}
		published++
	}
	if published > 0 {
		h.notifier.Notify()
		metrics.EventsAppendedTotal.WithLabelValues(string(event.CourierLocation)).Add(float64(published))
	}

	return IngestLocationResult{CourierID: c.ID(), ActiveOrders: len(orders)}, nil
}

func (h IngestLocationCommandHandler) saveSnapshot(ctx context.Context, command IngestLocationCommand) (*courier.Courier, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CourierRepository()
	c, err := repo.GetByUserID(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotCourier
	}
	if err != nil {
		return nil, err
	}

	if err := c.UpdatePosition(command.Position(), command.Position().CapturedAt()); err != nil {
		return nil, err
	}
	if err := repo.SavePosition(ctx, c); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (h IngestLocationCommandHandler) fanOut(ctx context.Context, c *courier.Courier, o *order.Order, pos courier.Position) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		metrics.LocationFanoutErrorsTotal.WithLabelValues("commit").Inc()
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := locationlog.NewEntry(o.ID(), c.ID(), pos, pos.CapturedAt())
	if err != nil {
		return err
	}
	if _, err := uow.LocationLogRepository().Add(ctx, entry); err != nil {
		metrics.LocationFanoutErrorsTotal.WithLabelValues("log").Inc()
		return fmt.Errorf("append location log: %w", err)
	}

	loc := pos.Location()
	eta := h.estimator.Estimate(ctx, &loc, o.Destination(), c.Transport())

	restaurantID := o.RestaurantID()
	e, err := event.NewJSON(event.TrackingChannel(o.ID()), event.CourierLocation, event.CourierLocationPayload{
		OrderID:    o.ID(),
		CourierID:  c.ID(),
		Latitude:   loc.Latitude(),
		Longitude:  loc.Longitude(),
		Accuracy:   pos.Accuracy(),
		Heading:    pos.Heading(),
		Speed:      pos.Speed(),
		ETA:        eta.Payload(),
		RecordedAt: pos.CapturedAt(),
	}, &restaurantID)
	if err != nil {
		return err
	}
	if _, err := uow.EventRepository().Append(ctx, e); err != nil {
		metrics.LocationFanoutErrorsTotal.WithLabelValues("event").Inc()
		return fmt.Errorf("append event: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		metrics.LocationFanoutErrorsTotal.WithLabelValues("commit").Inc()
		return err
	}
	return nil
}
