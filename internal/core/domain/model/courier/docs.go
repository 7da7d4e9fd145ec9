// Package courier provides the Courier aggregate: a delivery courier linked to
// a staff account, with a live status, a transport mode and the last position
// the courier reported.
//
// The package includes:
//   - Courier: the aggregate root, overwritten position snapshot and liveness
//   - Status: offline, available or busy
//   - Transport: walking, bicycle, scooter or car, with speed and comfort range
//   - Position: one location report with optional accuracy, heading and speed
//
// Key business rules:
//   - Only an active account can report positions or take orders
//   - A courier is a dispatch candidate when available, or busy with fewer
//     active orders than the configured cap
//   - Contact details leave the system only masked (see MaskName, MaskPhone)
//
// The number of active orders is not stored on the courier. It is derived from
// the orders that reference it.
package courier
