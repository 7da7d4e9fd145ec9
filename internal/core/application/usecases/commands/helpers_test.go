package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func newTestOrder(t *testing.T, id int64, deliveryType order.DeliveryType, status order.Status, courierID *int64) *order.Order {
	t.Helper()
	dest := mustLocation(t, 55.760, 37.630)
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:           id,
		RestaurantID: 1,
		DeliveryType: deliveryType,
		Destination:  &dest,
		Address:      "Tverskaya 7",
		CourierID:    courierID,
		Status:       status,
		StatusTimes:  map[order.Status]time.Time{order.Pending: fixedNow.Add(-time.Hour)},
	})
	require.NoError(t, err)
	return o
}

func newTestCourier(t *testing.T, id int64, status courier.Status, at *kernel.Location, active bool) *courier.Courier {
	t.Helper()
	var pos *courier.Position
	if at != nil {
		p, err := courier.NewPosition(*at, nil, nil, nil, fixedNow)
		require.NoError(t, err)
		pos = &p
	}
	c, err := courier.RestoreCourier(courier.RestoreParams{
		ID:           id,
		UserID:       id + 1000,
		RestaurantID: 1,
		Name:         "Ivan Petrov",
		Phone:        "+79991234567",
		Active:       active,
		Status:       status,
		Transport:    courier.Bicycle,
		Position:     pos,
	})
	require.NoError(t, err)
	return c
}

func int64Ptr(v int64) *int64 {
	return &v
}
