package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"time"

	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/order"
)

type autoAssignStub func(context.Context, commands.AutoAssignCommand) (commands.AutoAssignResult, error)

func (f autoAssignStub) Handle(ctx context.Context, c commands.AutoAssignCommand) (commands.AutoAssignResult, error) {
	return f(ctx, c)
}

type ingestStub func(context.Context, commands.IngestLocationCommand) (commands.IngestLocationResult, error)

func (f ingestStub) Handle(ctx context.Context, c commands.IngestLocationCommand) (commands.IngestLocationResult, error) {
	return f(ctx, c)
}

type statusStub func(context.Context, commands.ChangeOrderStatusCommand) (*order.Order, error)

func (f statusStub) Handle(ctx context.Context, c commands.ChangeOrderStatusCommand) (*order.Order, error) {
	return f(ctx, c)
}

type publishStub func(context.Context, commands.PublishEventCommand) (event.Event, error)

func (f publishStub) Handle(ctx context.Context, c commands.PublishEventCommand) (event.Event, error) {
	return f(ctx, c)
}

type cleanupStub func(context.Context, commands.CleanupEventsCommand) (int64, error)

func (f cleanupStub) Handle(ctx context.Context, c commands.CleanupEventsCommand) (int64, error) {
	return f(ctx, c)
}

type rankStub func(context.Context, queries.RankCouriersQuery) (queries.RankCouriersQueryResponse, error)

func (f rankStub) Handle(ctx context.Context, q queries.RankCouriersQuery) (queries.RankCouriersQueryResponse, error) {
	return f(ctx, q)
}

type listStub func(context.Context, queries.ListCouriersQuery) ([]queries.ListCouriersQueryResponse, error)

func (f listStub) Handle(ctx context.Context, q queries.ListCouriersQuery) ([]queries.ListCouriersQueryResponse, error) {
	return f(ctx, q)
}

type trailStub func(context.Context, queries.GetOrderTrailQuery) ([]queries.TrailPoint, error)

func (f trailStub) Handle(ctx context.Context, q queries.GetOrderTrailQuery) ([]queries.TrailPoint, error) {
	return f(ctx, q)
}

type orderRestaurantStub func(context.Context, queries.GetOrderRestaurantQuery) (int64, error)

func (f orderRestaurantStub) Handle(ctx context.Context, q queries.GetOrderRestaurantQuery) (int64, error) {
	return f(ctx, q)
}

type trackingStub struct {
	authorize func(context.Context, queries.TrackingViewQuery) (*order.Order, error)
	view      func(context.Context, queries.TrackingViewQuery) (queries.TrackingView, error)
}

func (s trackingStub) Authorize(ctx context.Context, q queries.TrackingViewQuery) (*order.Order, error) {
	return s.authorize(ctx, q)
}

func (s trackingStub) Handle(ctx context.Context, q queries.TrackingViewQuery) (queries.TrackingView, error) {
	return s.view(ctx, q)
}

// feedStub records the arguments of the last call.
type feedStub struct {
	cursor  *int64
	filter  event.Filter
	timeout time.Duration
	limit   int
	request feed.StreamRequest

	poll     feed.PollResult
	snapshot []event.Event
	stream   func(sink feed.Sink) error
}

func (f *feedStub) Poll(_ context.Context, cursor *int64, filter event.Filter, timeout time.Duration) (feed.PollResult, error) {
	f.cursor, f.filter, f.timeout = cursor, filter, timeout
	return f.poll, nil
}

func (f *feedStub) Snapshot(_ context.Context, filter event.Filter, limit int) ([]event.Event, error) {
	f.filter, f.limit = filter, limit
	return f.snapshot, nil
}

func (f *feedStub) Stream(_ context.Context, req feed.StreamRequest, sink feed.Sink) error {
	f.request = req
	if f.stream == nil {
		return nil
	}
	return f.stream(sink)
}

// brokenWriter accepts headers but fails every body write, like a client that
// hung up before the stream started.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("write: broken pipe")
}
