// Package orderrepo maps order aggregates to the orders table.
// Only the courier, assignment time, status and status timestamps are ever
// written back; the rest of the row belongs to the ordering subsystem.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure of an order.
type OrderDTO struct {
	ID                int64 `gorm:"primaryKey"`
	RestaurantID      int64 `gorm:"not null;index"`
	DeliveryType      string
	DestinationLat    *float64
	DestinationLng    *float64
	Address           string
	CourierID         *int64 `gorm:"index"`
	CourierAssignedAt *time.Time
	Status            string
	CreatedAt         time.Time
	PreparingAt       *time.Time
	ReadyAt           *time.Time
	PickedUpAt        *time.Time
	InTransitAt       *time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// statusColumns maps every non-initial status to the column holding the time
// it was reached. Pending is stored in created_at.
var statusColumns = map[order.Status]string{
	order.Preparing: "preparing_at",
	order.Ready:     "ready_at",
	order.PickedUp:  "picked_up_at",
	order.InTransit: "in_transit_at",
	order.Delivered: "delivered_at",
	order.Cancelled: "cancelled_at",
}

func (dto *OrderDTO) statusTime(s order.Status) **time.Time {
	switch s {
	case order.Preparing:
		return &dto.PreparingAt
	case order.Ready:
		return &dto.ReadyAt
	case order.PickedUp:
		return &dto.PickedUpAt
	case order.InTransit:
		return &dto.InTransitAt
	case order.Delivered:
		return &dto.DeliveredAt
	case order.Cancelled:
		return &dto.CancelledAt
	}
	return nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                o.ID(),
		RestaurantID:      o.RestaurantID(),
		DeliveryType:      string(o.DeliveryType()),
		Address:           o.Address(),
		CourierID:         o.Courier(),
		CourierAssignedAt: o.CourierAssignedAt(),
		Status:            o.Status().String(),
	}
	if d := o.Destination(); d != nil {
		lat, lng := d.Latitude(), d.Longitude()
		dto.DestinationLat = &lat
		dto.DestinationLng = &lng
	}

	for s, at := range o.StatusTimes() {
		if s == order.Pending {
			dto.CreatedAt = at
			continue
		}
		if field := dto.statusTime(s); field != nil {
			t := at
			*field = &t
		}
	}
	return dto
}

// toDomain reconstructs the aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var dest *kernel.Location
	if dto.DestinationLat != nil && dto.DestinationLng != nil {
		loc, err := kernel.NewLocation(*dto.DestinationLat, *dto.DestinationLng)
		if err != nil {
			return nil, err
		}
		dest = &loc
	}

	times := map[order.Status]time.Time{}
	if !dto.CreatedAt.IsZero() {
		times[order.Pending] = dto.CreatedAt
	}
	for s := range statusColumns {
		if at := *dto.statusTime(s); at != nil {
			times[s] = *at
		}
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                dto.ID,
		RestaurantID:      dto.RestaurantID,
		DeliveryType:      order.DeliveryType(dto.DeliveryType),
		Destination:       dest,
		Address:           dto.Address,
		CourierID:         dto.CourierID,
		CourierAssignedAt: dto.CourierAssignedAt,
		Status:            order.Status(dto.Status),
		StatusTimes:       times,
	})
}

// mutableColumns are the columns Update writes. Nil values clear the column.
func (dto OrderDTO) mutableColumns() map[string]any {
	cols := map[string]any{
		"courier_id":          dto.CourierID,
		"courier_assigned_at": dto.CourierAssignedAt,
		"status":              dto.Status,
	}
	for s, col := range statusColumns {
		cols[col] = *dto.statusTime(s)
	}
	return cols
}
