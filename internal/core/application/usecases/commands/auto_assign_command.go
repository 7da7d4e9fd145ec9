package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAutoAssignCommandIsNotConstructed = errors.New(
	"AutoAssignCommand must be created via NewAutoAssignCommand constructor",
)

// AutoAssignCommand asks the engine to attach the best courier to an order.
//
// Example:
//
//	cmd, err := NewAutoAssignCommand(42)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && !result.Success {
//	    log.Printf("not assigned: %s", result.Reason)
//	}
type AutoAssignCommand struct {
	orderID int64
	guard   guard.ConstructorGuard
}

// NewAutoAssignCommand creates the command for the given order.
func NewAutoAssignCommand(orderID int64) (AutoAssignCommand, error) {
	if orderID <= 0 {
		return AutoAssignCommand{}, errs.NewValueIsRequiredError("order_id")
	}
	return AutoAssignCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order to dispatch.
func (c AutoAssignCommand) OrderID() int64 {
	return c.orderID
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCommandIsNotConstructed)
}
