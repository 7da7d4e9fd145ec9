package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	now        time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) addCourier(id int64) {
	c, err := courier.NewCourier(id, id+1000, 1, "Courier", "", courier.Bicycle)
	suite.Require().NoError(err)
	suite.Require().NoError(courierrepo.NewGormCourierRepository(suite.pg.DB).Add(context.Background(), c))
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(id int64, deliveryType order.DeliveryType, status order.Status, courierID *int64) *order.Order {
	dest, err := kernel.NewLocation(55.76, 37.63)
	suite.Require().NoError(err)
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:           id,
		RestaurantID: 1,
		DeliveryType: deliveryType,
		Destination:  &dest,
		Address:      "Tverskaya 7",
		CourierID:    courierID,
		Status:       status,
		StatusTimes:  map[order.Status]time.Time{order.Pending: suite.now},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAllFields() {
	ctx := context.Background()
	suite.addOrder(1, order.TypeDelivery, order.Pending, nil)

	got, err := suite.repository.Get(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(int64(1), got.RestaurantID())
	suite.Equal(order.TypeDelivery, got.DeliveryType())
	suite.Equal(order.Pending, got.Status())
	suite.Equal("Tverskaya 7", got.Address())
	suite.Require().NotNil(got.Destination())
	suite.InDelta(55.76, got.Destination().Latitude(), 1e-9)
	suite.Nil(got.Courier())
	suite.True(suite.now.Equal(got.StatusTimes()[order.Pending]))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), 999)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesAssignmentAndStatusTimes() {
	ctx := context.Background()
	suite.addCourier(7)
	o := suite.addOrder(1, order.TypeDelivery, order.Ready, nil)

	assignedAt := suite.now.Add(time.Minute)
	suite.Require().NoError(o.AssignCourier(7, assignedAt))
	suite.Require().NoError(o.ChangeStatus(order.PickedUp, assignedAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Courier())
	suite.Equal(int64(7), *got.Courier())
	suite.True(assignedAt.Equal(*got.CourierAssignedAt()))
	suite.Equal(order.PickedUp, got.Status())
	suite.True(assignedAt.Add(time.Minute).Equal(got.StatusTimes()[order.PickedUp]))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	dest, _ := kernel.NewLocation(55.76, 37.63)
	o, err := order.NewOrder(404, 1, order.TypeDelivery, &dest, "", suite.now)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListInTransitByCourier() {
	ctx := context.Background()
	suite.addCourier(7)
	suite.addCourier(8)
	suite.addOrder(1, order.TypeDelivery, order.PickedUp, int64Ptr(7))
	suite.addOrder(2, order.TypeDelivery, order.InTransit, int64Ptr(7))
	suite.addOrder(3, order.TypeDelivery, order.Ready, int64Ptr(7))
	suite.addOrder(4, order.TypeDelivery, order.Delivered, int64Ptr(7))
	suite.addOrder(5, order.TypeDelivery, order.InTransit, int64Ptr(8))

	orders, err := suite.repository.ListInTransitByCourier(ctx, 7)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(int64(1), orders[0].ID())
	suite.Equal(int64(2), orders[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByCourier() {
	ctx := context.Background()
	suite.addCourier(7)
	suite.addCourier(8)
	suite.addCourier(9)
	suite.addOrder(1, order.TypeDelivery, order.Ready, int64Ptr(7))
	suite.addOrder(2, order.TypeDelivery, order.InTransit, int64Ptr(7))
	suite.addOrder(3, order.TypeDelivery, order.Delivered, int64Ptr(7))
	suite.addOrder(4, order.TypeDelivery, order.Cancelled, int64Ptr(8))
	suite.addOrder(5, order.TypeDelivery, order.Pending, int64Ptr(9))

	counts, err := suite.repository.CountActiveByCourier(ctx, []int64{7, 8, 9})

	suite.Require().NoError(err)
	suite.Equal(map[int64]int{7: 2, 9: 1}, counts)

	empty, err := suite.repository.CountActiveByCourier(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAwaitingCourier() {
	ctx := context.Background()
	suite.addCourier(7)
	suite.addOrder(1, order.TypeDelivery, order.Ready, nil)
	suite.addOrder(2, order.TypeDelivery, order.Ready, int64Ptr(7))
	suite.addOrder(3, order.TypePickup, order.Ready, nil)
	suite.addOrder(4, order.TypeDelivery, order.Preparing, nil)
	suite.addOrder(5, order.TypeDelivery, order.Ready, nil)

	ids, err := suite.repository.ListAwaitingCourier(ctx, 10)
	suite.Require().NoError(err)
	suite.Equal([]int64{1, 5}, ids)

	ids, err = suite.repository.ListAwaitingCourier(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal([]int64{1}, ids)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksSecondLocker() {
	ctx := context.Background()
	suite.addOrder(1, order.TypeDelivery, order.Ready, nil)

	first := suite.pg.DB.Begin()
	defer first.Rollback()
	_, err := orderrepo.NewGormOrderRepository(first).GetForUpdate(ctx, 1)
	suite.Require().NoError(err)

	second := suite.pg.DB.Begin()
	defer second.Rollback()
	suite.Require().NoError(second.Exec("SET LOCAL lock_timeout = '200ms'").Error)

	_, err = orderrepo.NewGormOrderRepository(second).GetForUpdate(ctx, 1)
	suite.Require().Error(err, "second locker must wait for the first transaction")
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

func int64Ptr(v int64) *int64 {
	return &v
}
