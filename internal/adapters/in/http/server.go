// Package http exposes dispatch, courier, realtime and public tracking
// endpoints over echo.
package http

import (
	"context"
	"time"

	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/order"

	"github.com/rs/zerolog"
)

// Use case ports of the server. The application handlers satisfy them.
type (
	AutoAssigner interface {
		Handle(ctx context.Context, command commands.AutoAssignCommand) (commands.AutoAssignResult, error)
	}
	LocationIngester interface {
		Handle(ctx context.Context, command commands.IngestLocationCommand) (commands.IngestLocationResult, error)
	}
	OrderStatusChanger interface {
		Handle(ctx context.Context, command commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	EventPublisher interface {
		Handle(ctx context.Context, command commands.PublishEventCommand) (event.Event, error)
	}
	EventCleaner interface {
		Handle(ctx context.Context, command commands.CleanupEventsCommand) (int64, error)
	}
	CourierRanker interface {
		Handle(ctx context.Context, query queries.RankCouriersQuery) (queries.RankCouriersQueryResponse, error)
	}
	CourierLister interface {
		Handle(ctx context.Context, query queries.ListCouriersQuery) ([]queries.ListCouriersQueryResponse, error)
	}
	OrderRestaurantResolver interface {
		Handle(ctx context.Context, query queries.GetOrderRestaurantQuery) (int64, error)
	}
	TrailReader interface {
		Handle(ctx context.Context, query queries.GetOrderTrailQuery) ([]queries.TrailPoint, error)
	}
	TrackingViewer interface {
		Authorize(ctx context.Context, query queries.TrackingViewQuery) (*order.Order, error)
		Handle(ctx context.Context, query queries.TrackingViewQuery) (queries.TrackingView, error)
	}
	// Feed serves the event log to waiting clients.
	Feed interface {
		Poll(ctx context.Context, cursor *int64, filter event.Filter, timeout time.Duration) (feed.PollResult, error)
		Snapshot(ctx context.Context, filter event.Filter, limit int) ([]event.Event, error)
		Stream(ctx context.Context, req feed.StreamRequest, sink feed.Sink) error
	}
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	AutoAssign        AutoAssigner
	IngestLocation    LocationIngester
	ChangeOrderStatus OrderStatusChanger
	PublishEvent      EventPublisher
	CleanupEvents     EventCleaner
	RankCouriers      CourierRanker
	ListCouriers      CourierLister
	OrderTrail        TrailReader
	OrderRestaurant   OrderRestaurantResolver
	TrackingView      TrackingViewer
	Feed              Feed
}

// Server implements the HTTP endpoints. It translates requests into commands
// and queries and their results into JSON or event streams.
type Server struct {
	h                Handlers
	defaultRetention time.Duration
	logger           zerolog.Logger
}

// NewServer creates a Server. defaultRetention is used by the cleanup
// endpoint when the caller does not pass a horizon.
func NewServer(h Handlers, defaultRetention time.Duration, logger zerolog.Logger) *Server {
	return &Server{
		h:                h,
		defaultRetention: defaultRetention,
		logger:           logger.With().Str("component", "http").Logger(),
	}
}
