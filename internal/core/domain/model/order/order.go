package order

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrAlreadyAssigned is returned when the order already carries a courier.
	ErrAlreadyAssigned = errors.New("order already has a courier")
	// ErrNotDeliveryOrder is returned when a courier is requested for a pickup or dine-in order.
	ErrNotDeliveryOrder = errors.New("order is not a delivery order")
	// ErrStatusNotAssignable is returned when the order status does not admit an assignment.
	ErrStatusNotAssignable = errors.New("order status does not allow courier assignment")
	// ErrInvalidTransition is returned for a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Order is the delivery-relevant view of a restaurant order.
//
// Order follows these invariants:
//   - Must have a positive identifier and a positive restaurant identifier
//   - Has at most one courier, and only a delivery order can have one
//   - The courier is attached only while status is pending or ready
//   - Every status the order has reached carries a timestamp
//
// The destination may be absent (address without coordinates); ETA for such
// orders is unknown.
type Order struct {
	id                int64
	restaurantID      int64
	deliveryType      DeliveryType
	destination       *kernel.Location
	address           string
	courierID         *int64
	courierAssignedAt *time.Time
	status            Status
	statusTimes       map[Status]time.Time
	guard             guard.ConstructorGuard
}

// NewOrder creates a pending order.
//
// Parameters:
//   - id: order identifier issued by the ordering subsystem (> 0)
//   - restaurantID: owning restaurant (> 0)
//   - deliveryType: delivery, pickup or dine_in
//   - destination: delivery point, nil when not geocoded
//   - address: formatted address for display
//   - now: creation time, stamped as the time pending was reached
//
// Example:
//
//	dest, _ := kernel.NewLocation(55.760, 37.630)
//	o, err := order.NewOrder(42, 1, order.TypeDelivery, &dest, "Tverskaya 7", time.Now())
func NewOrder(
	id, restaurantID int64,
	deliveryType DeliveryType,
	destination *kernel.Location,
	address string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:      Pending,
		statusTimes: map[Status]time.Time{Pending: now},
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setDeliveryType(deliveryType),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries persisted order state into RestoreOrder.
type RestoreParams struct {
	ID                int64
	RestaurantID      int64
	DeliveryType      DeliveryType
	Destination       *kernel.Location
	Address           string
	CourierID         *int64
	CourierAssignedAt *time.Time
	Status            Status
	StatusTimes       map[Status]time.Time
}

// RestoreOrder rebuilds an order loaded from storage.
// Unlike NewOrder it accepts any status and an existing courier, but it still
// rejects states that break the aggregate invariants, e.g. a courier on a
// pickup order.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		address:           p.Address,
		courierAssignedAt: p.CourierAssignedAt,
		statusTimes:       make(map[Status]time.Time, len(p.StatusTimes)),
		guard:             guard.NewConstructorGuard(),
	}
	maps.Copy(o.statusTimes, p.StatusTimes)

	if err := errors.Join(
		o.setID(p.ID),
		o.setRestaurantID(p.RestaurantID),
		o.setDeliveryType(p.DeliveryType),
		o.setDestination(p.Destination),
		o.setStatus(p.Status),
		o.setCourier(p.CourierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() int64 {
	return o.id
}

// RestaurantID returns the owning restaurant.
func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// DeliveryType returns how the order reaches the customer.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// IsDelivery reports whether a courier carries this order.
func (o *Order) IsDelivery() bool {
	return o.deliveryType == TypeDelivery
}

// Destination returns the delivery point, nil when unknown.
func (o *Order) Destination() *kernel.Location {
	return o.destination
}

// Address returns the formatted delivery address.
func (o *Order) Address() string {
	return o.address
}

// Courier returns the assigned courier, nil when unassigned.
func (o *Order) Courier() *int64 {
	return o.courierID
}

// CourierAssignedAt returns when the current courier was attached.
func (o *Order) CourierAssignedAt() *time.Time {
	return o.courierAssignedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// StatusTimes returns a copy of the timestamps of every reached status.
func (o *Order) StatusTimes() map[Status]time.Time {
	out := make(map[Status]time.Time, len(o.statusTimes))
	maps.Copy(out, o.statusTimes)
	return out
}

// CheckAssignable reports why a courier cannot be attached right now.
//
// Returns:
//   - nil when the order is a delivery order, unassigned, and pending or ready
//   - ErrNotDeliveryOrder, ErrAlreadyAssigned or ErrStatusNotAssignable otherwise
//
// The checks run in that order so the caller gets the most specific reason.
func (o *Order) CheckAssignable() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.IsDelivery() {
		return ErrNotDeliveryOrder
	}
	if o.courierID != nil {
		return ErrAlreadyAssigned
	}
	if !o.status.IsAssignable() {
		return fmt.Errorf("%w: %s", ErrStatusNotAssignable, o.status)
	}
	return nil
}

// AssignCourier attaches courierID and stamps the assignment time.
// It never overwrites an existing courier.
//
// Example:
//
//	if err := o.AssignCourier(7, time.Now()); errors.Is(err, order.ErrAlreadyAssigned) {
//	    // another dispatcher won
//	}
func (o *Order) AssignCourier(courierID int64, at time.Time) error {
	if courierID <= 0 {
		return errs.NewValueIsRequiredError("courier_id")
	}
	if err := o.CheckAssignable(); err != nil {
		return err
	}

	id := courierID
	o.courierID = &id
	o.courierAssignedAt = &at
	return nil
}

// ChangeStatus moves the order to next and stamps the time it was reached.
// Moving to a status the lifecycle does not allow returns ErrInvalidTransition.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.statusTimes[newStatus] = at
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("restaurant_id")
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryType(t DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.deliveryType = t
	return nil
}

func (o *Order) setDestination(loc *kernel.Location) error {
	if loc == nil {
		o.destination = nil
		return nil
	}
	if err := loc.Validate(); err != nil {
		return err
	}
	dest := *loc
	o.destination = &dest
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

// setCourier must run after setDeliveryType.
func (o *Order) setCourier(courierID *int64) error {
	if courierID == nil {
		o.courierID = nil
		return nil
	}
	if *courierID <= 0 {
		return errs.NewValueIsInvalidError("courier_id")
	}
	if o.deliveryType != TypeDelivery {
		return errs.NewValueIsInvalidErrorWithCause("courier_id", ErrNotDeliveryOrder)
	}
	id := *courierID
	o.courierID = &id
	return nil
}
