package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/locationlogrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/locationlog"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type ReadModelsIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
}

func (suite *ReadModelsIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ReadModelsIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *ReadModelsIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ReadModelsIntegrationTestSuite) addCourier(id, restaurantID int64, name string, pos *courier.Position) {
	var seen *time.Time
	if pos != nil {
		at := pos.CapturedAt()
		seen = &at
	}
	c, err := courier.RestoreCourier(courier.RestoreParams{
		ID: id, UserID: 1000 + id, RestaurantID: restaurantID, Name: name,
		Active: true, Status: courier.Busy, Transport: courier.Bicycle,
		Position: pos, LastSeenAt: seen,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(courierrepo.NewGormCourierRepository(suite.pg.DB).Add(context.Background(), c))
}

func (suite *ReadModelsIntegrationTestSuite) addOrder(id, courierID int64, status order.Status) {
	cid := courierID
	o, err := order.RestoreOrder(order.RestoreParams{
		ID: id, RestaurantID: 1, DeliveryType: order.TypeDelivery, Address: "Tverskaya 7",
		CourierID: &cid, Status: status,
		StatusTimes: map[order.Status]time.Time{order.Pending: time.Now()},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB).Add(context.Background(), o))
}

func (suite *ReadModelsIntegrationTestSuite) position(lat float64, at time.Time) courier.Position {
	loc, err := kernel.NewLocation(lat, 37.62)
	suite.Require().NoError(err)
	speed := 4.5
	pos, err := courier.NewPosition(loc, nil, nil, &speed, at)
	suite.Require().NoError(err)
	return pos
}

func (suite *ReadModelsIntegrationTestSuite) TestListCouriers_Board() {
	ctx := context.Background()
	pos := suite.position(55.75, time.Now().Add(-time.Minute))
	suite.addCourier(1, 1, "Boris", &pos)
	suite.addCourier(2, 1, "Anna", nil)
	suite.addCourier(3, 2, "Other", nil)
	suite.addOrder(10, 1, order.InTransit)
	suite.addOrder(11, 1, order.Ready)
	suite.addOrder(12, 1, order.Delivered)

	query, err := queries.NewListCouriersQuery(1)
	suite.Require().NoError(err)
	board, err := queries.NewListCouriersQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(board, 2)
	suite.Equal("Anna", board[0].Name)
	suite.Nil(board[0].Location)
	suite.Nil(board[0].LastSeenAt)
	suite.Zero(board[0].ActiveOrders)

	suite.Equal("Boris", board[1].Name)
	suite.Equal(courier.Busy, board[1].Status)
	suite.Equal(courier.Bicycle, board[1].Transport)
	suite.Require().NotNil(board[1].Location)
	suite.InDelta(55.75, board[1].Location.Latitude(), 1e-9)
	suite.NotNil(board[1].LastSeenAt)
	suite.Equal(2, board[1].ActiveOrders)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetOrderTrail_OldestFirstAndLimited() {
	ctx := context.Background()
	suite.addCourier(1, 1, "Boris", nil)
	suite.addOrder(10, 1, order.InTransit)

	logs := locationlogrepo.NewGormLocationLogRepository(suite.pg.DB)
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		at := base.Add(time.Duration(i) * time.Minute)
		entry, err := locationlog.NewEntry(10, 1, suite.position(55.70+float64(i)*0.01, at), at)
		suite.Require().NoError(err)
		_, err = logs.Add(ctx, entry)
		suite.Require().NoError(err)
	}
	handler := queries.NewGetOrderTrailQueryHandler(suite.pg.DB)

	query, err := queries.NewGetOrderTrailQuery(10, 0)
	suite.Require().NoError(err)
	trail, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(trail, 3)
	suite.True(base.Equal(trail[0].RecordedAt))
	suite.InDelta(55.72, trail[2].Location.Latitude(), 1e-9)
	suite.Require().NotNil(trail[0].Speed)
	suite.Equal(4.5, *trail[0].Speed)
	suite.Nil(trail[0].Heading)

	limited, err := queries.NewGetOrderTrailQuery(10, 2)
	suite.Require().NoError(err)
	trail, err = handler.Handle(ctx, limited)
	suite.Require().NoError(err)
	suite.Len(trail, 2)

	none, err := queries.NewGetOrderTrailQuery(99, 0)
	suite.Require().NoError(err)
	trail, err = handler.Handle(ctx, none)
	suite.Require().NoError(err)
	suite.Empty(trail)
}

func TestReadModelsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelsIntegrationTestSuite))
}
