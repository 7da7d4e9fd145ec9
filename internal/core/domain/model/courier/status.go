package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the live availability of a courier.
type Status string

const (
	// Offline couriers are not working and never receive orders.
	Offline Status = "offline"
	// Available couriers are on shift and idle.
	Available Status = "available"
	// Busy couriers carry at least one order.
	Busy Status = "busy"
)

// ParseStatus converts external text into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is a known status.
func (s Status) Validate() error {
	switch s {
	case Offline, Available, Busy:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("courier_status", fmt.Errorf("%q is not a valid courier status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
