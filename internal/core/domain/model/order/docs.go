// Package order provides the delivery-relevant slice of a restaurant order.
//
// Orders are created and owned by the ordering subsystem; this package models
// only the fields the dispatch core reads and the two things it is allowed to
// change: the courier assignment and the delivery status.
//
// The package includes:
//   - Order: the aggregate that owns its courier assignment pointer
//   - Status: the delivery lifecycle state machine
//   - DeliveryType: delivery, pickup or dine-in
//
// Key business rules:
//   - An order has at most one courier at a time
//   - A courier may be assigned only to a delivery order that is pending or ready
//     and has no courier yet
//   - Status follows pending -> preparing -> ready -> picked_up -> in_transit -> delivered,
//     cancelled is reachable from every non-terminal state
//   - Every reached status is stamped with the time it was reached
package order
