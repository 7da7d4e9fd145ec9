package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order the courier is carrying to the next
// status (picked_up, in_transit, delivered) or cancels it.
type ChangeOrderStatusCommand struct {
	userID  int64
	orderID int64
	status  order.Status
	guard   guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the request.
func NewChangeOrderStatusCommand(userID, orderID int64, status string) (ChangeOrderStatusCommand, error) {
	if userID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("user_id")
	}
	if orderID <= 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("order_id")
	}
	s, err := order.ParseStatus(status)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		userID:  userID,
		orderID: orderID,
		status:  s,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the account of the courier making the change.
func (c ChangeOrderStatusCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order being moved.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}
