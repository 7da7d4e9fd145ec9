package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// DeliveryType tells how the order reaches the customer.
type DeliveryType string

const (
	// TypeDelivery orders are carried by a courier.
	TypeDelivery DeliveryType = "delivery"
	// TypePickup orders are collected by the customer.
	TypePickup DeliveryType = "pickup"
	// TypeDineIn orders are served in the restaurant.
	TypeDineIn DeliveryType = "dine_in"
)

// Validate checks that t is a known delivery type.
func (t DeliveryType) Validate() error {
	switch t {
	case TypeDelivery, TypePickup, TypeDineIn:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("delivery_type", fmt.Errorf("%q is not a valid delivery type", string(t)))
	}
}
