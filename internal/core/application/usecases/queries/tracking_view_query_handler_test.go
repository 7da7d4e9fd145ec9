package queries_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const tokenValue = "6f1c2a7e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"

type TrackingViewSuite struct {
	suite.Suite
	tokens   *MockTrackingTokenRepository
	orders   *MockOrderRepository
	couriers *MockCourierRepository
	handler  queries.TrackingViewQueryHandler
	token    kernel.UUID
}

func (s *TrackingViewSuite) SetupTest() {
	s.tokens = new(MockTrackingTokenRepository)
	s.orders = new(MockOrderRepository)
	s.couriers = new(MockCourierRepository)
	s.handler = queries.NewTrackingViewQueryHandler(s.tokens, s.orders, s.couriers, services.NewEstimator(nil)).
		WithClock(func() time.Time { return fixedNow })

	token, err := kernel.UUIDFromString(tokenValue)
	s.Require().NoError(err)
	s.token = token
}

func (s *TrackingViewSuite) query() queries.TrackingViewQuery {
	q, err := queries.NewTrackingViewQuery(tokenValue)
	s.Require().NoError(err)
	return q
}

func (s *TrackingViewSuite) validToken() tracking.Token {
	expires := fixedNow.Add(time.Hour)
	return tracking.Token{Value: s.token, OrderID: 42, Active: true, ExpiresAt: &expires}
}

func (s *TrackingViewSuite) TestInTransitOrder() {
	ctx := s.T().Context()
	pos := mustLocation(s.T(), 55.755, 37.625)
	s.tokens.On("Get", ctx, s.token).Return(s.validToken(), nil)
	s.orders.On("Get", ctx, int64(42)).Return(restoreOrder(s.T(), 42, order.TypeDelivery, order.InTransit, int64Ptr(7)), nil)
	s.couriers.On("Get", ctx, int64(7)).Return(restoreCourier(s.T(), 7, courier.Busy, &pos), nil)

	view, err := s.handler.Handle(ctx, s.query())

	s.Require().NoError(err)
	s.Equal(int64(42), view.OrderID)
	s.Equal("tracking_42", view.Channel)
	s.Equal(order.InTransit, view.Status)
	s.Equal("On the way", view.StatusLabel)
	s.Equal("Tverskaya 7", view.Address)
	s.Require().NotNil(view.Courier)
	s.Equal("Ivan P.", view.Courier.Name)
	s.Equal("+*********67", view.Courier.Phone)
	s.Require().NotNil(view.Courier.Location)
	s.True(view.ETA.Known)
	s.Greater(view.ETA.Minutes, 0.0)
}

func (s *TrackingViewSuite) TestCourierPositionHiddenBeforePickup() {
	ctx := s.T().Context()
	pos := mustLocation(s.T(), 55.755, 37.625)
	s.tokens.On("Get", ctx, s.token).Return(s.validToken(), nil)
	s.orders.On("Get", ctx, int64(42)).Return(restoreOrder(s.T(), 42, order.TypeDelivery, order.Ready, int64Ptr(7)), nil)
	s.couriers.On("Get", ctx, int64(7)).Return(restoreCourier(s.T(), 7, courier.Busy, &pos), nil)

	view, err := s.handler.Handle(ctx, s.query())

	s.Require().NoError(err)
	s.Require().NotNil(view.Courier)
	s.Nil(view.Courier.Location)
	s.True(view.ETA.Known)
}

func (s *TrackingViewSuite) TestUnassignedOrderHasUnknownETA() {
	ctx := s.T().Context()
	s.tokens.On("Get", ctx, s.token).Return(s.validToken(), nil)
	s.orders.On("Get", ctx, int64(42)).Return(restoreOrder(s.T(), 42, order.TypeDelivery, order.Preparing, nil), nil)

	view, err := s.handler.Handle(ctx, s.query())

	s.Require().NoError(err)
	s.Nil(view.Courier)
	s.False(view.ETA.Known)
	s.couriers.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *TrackingViewSuite) TestDeliveredOrderHasNoETA() {
	ctx := s.T().Context()
	pos := mustLocation(s.T(), 55.760, 37.630)
	s.tokens.On("Get", ctx, s.token).Return(s.validToken(), nil)
	s.orders.On("Get", ctx, int64(42)).Return(restoreOrder(s.T(), 42, order.TypeDelivery, order.Delivered, int64Ptr(7)), nil)
	s.couriers.On("Get", ctx, int64(7)).Return(restoreCourier(s.T(), 7, courier.Available, &pos), nil)

	view, err := s.handler.Handle(ctx, s.query())

	s.Require().NoError(err)
	s.False(view.ETA.Known)
	s.Equal("#4CAF50", view.StatusColor)
}

func (s *TrackingViewSuite) TestDenials() {
	expired := fixedNow
	inactive := s.validToken()
	inactive.Active = false

	cases := []struct {
		name     string
		token    tracking.Token
		tokenErr error
		orderErr error
	}{
		{name: "unknown token", tokenErr: errs.NewObjectNotFoundError("tracking_token", tokenValue)},
		{name: "inactive token", token: inactive},
		{name: "expired token", token: tracking.Token{Value: s.token, OrderID: 42, Active: true, ExpiresAt: &expired}},
		{name: "order removed", token: s.validToken(), orderErr: errs.NewObjectNotFoundError("order", 42)},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			ctx := s.T().Context()
			s.tokens.On("Get", ctx, s.token).Return(tc.token, tc.tokenErr)
			s.orders.On("Get", ctx, int64(42)).Return(nil, tc.orderErr)

			_, err := s.handler.Handle(ctx, s.query())

			s.Require().ErrorIs(err, tracking.ErrTrackingDenied)
			s.Equal("tracking link is invalid or expired", err.Error())
		})
	}
}

func (s *TrackingViewSuite) TestMalformedToken() {
	_, err := queries.NewTrackingViewQuery("not-a-uuid")

	s.Require().ErrorIs(err, tracking.ErrTrackingDenied)
}

func (s *TrackingViewSuite) TestStorageFailurePassesThrough() {
	ctx := s.T().Context()
	s.tokens.On("Get", ctx, s.token).Return(tracking.Token{}, errors.New("connection refused"))

	_, err := s.handler.Authorize(ctx, s.query())

	s.Require().Error(err)
	s.NotErrorIs(err, tracking.ErrTrackingDenied)
}

func TestTrackingViewSuite(t *testing.T) {
	suite.Run(t, new(TrackingViewSuite))
}
