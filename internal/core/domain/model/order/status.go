package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the delivery lifecycle state of an order.
//
// State transitions:
//
//	pending ──> preparing ──> ready ──> picked_up ──> in_transit ──> delivered
//	   │            │           │           │              │
//	   └────────────┴───────────┴───────────┴──────────────┴──> cancelled
//
// delivered and cancelled are terminal.
type Status string

const (
	// Pending is the initial status of an accepted order.
	Pending Status = "pending"
	// Preparing means the kitchen is working on the order.
	Preparing Status = "preparing"
	// Ready means the order is packed and waits for pickup.
	Ready Status = "ready"
	// PickedUp means the courier has collected the order.
	PickedUp Status = "picked_up"
	// InTransit means the courier is on the way to the customer.
	InTransit Status = "in_transit"
	// Delivered is the successful terminal status.
	Delivered Status = "delivered"
	// Cancelled is the unsuccessful terminal status.
	Cancelled Status = "cancelled"
)

// Statuses lists all valid statuses in lifecycle order.
var Statuses = []Status{Pending, Preparing, Ready, PickedUp, InTransit, Delivered, Cancelled}

var nextStatus = map[Status]Status{
	Pending:   Preparing,
	Preparing: Ready,
	Ready:     PickedUp,
	PickedUp:  InTransit,
	InTransit: Delivered,
}

type presentation struct {
	label string
	color string
}

var presentations = map[Status]presentation{
	Pending:   {label: "Order received", color: "#9E9E9E"},
	Preparing: {label: "Preparing", color: "#FF9800"},
	Ready:     {label: "Ready for pickup", color: "#2196F3"},
	PickedUp:  {label: "Picked up by courier", color: "#3F51B5"},
	InTransit: {label: "On the way", color: "#673AB7"},
	Delivered: {label: "Delivered", color: "#4CAF50"},
	Cancelled: {label: "Cancelled", color: "#F44336"},
}

// ParseStatus converts external text into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := presentations[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsAssignable reports whether a courier may be attached in this status.
func (s Status) IsAssignable() bool {
	return s == Pending || s == Ready
}

// IsInTransit reports whether the courier is carrying the order, i.e. whether
// courier position updates are relevant to the customer.
func (s Status) IsInTransit() bool {
	return s == PickedUp || s == InTransit
}

// CanTransitionTo reports whether next directly follows s.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() || s.Validate() != nil {
		return false
	}
	if next == Cancelled {
		return true
	}
	return nextStatus[s] == next
}

// TransitionTo returns next when the transition is allowed.
//
// Example:
//
//	next, err := order.Ready.TransitionTo(order.PickedUp) // PickedUp, nil
//	_, err = order.Ready.TransitionTo(order.Delivered)    // error
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// Label is the customer facing name of the status.
func (s Status) Label() string {
	if p, ok := presentations[s]; ok {
		return p.label
	}
	return "Unknown"
}

// Color is the hex color used to render the status badge.
func (s Status) Color() string {
	if p, ok := presentations[s]; ok {
		return p.color
	}
	return "#000000"
}
