// Package services provides domain services that work across the order and
// courier aggregates.
//
// The package includes:
//   - Estimator: distance and arrival time between a courier and a destination
//   - OrderDispatcher: scores candidate couriers and attaches the best one
//
// Both are stateless. Storage, locking and event publishing belong to the
// application layer; the services only compute and mutate the aggregates they
// are given.
package services
