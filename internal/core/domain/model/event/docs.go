// Package event defines the entries of the realtime event log.
//
// An Event is created once, read by any number of stream, poll and snapshot
// clients, and eventually removed by the retention sweep. It is never updated.
// The identifier is assigned by storage, grows strictly with append order and
// serves as the client's cursor.
//
// Channels are plain strings: one TrackingChannel per order and the shared
// DeliveryChannel for dispatch dashboards.
package event
