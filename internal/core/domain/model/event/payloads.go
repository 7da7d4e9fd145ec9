package event

import "time"

// ETA is the serialized estimate. Known is false when distance or time could
// not be computed, in which case the numeric fields are omitted.
type ETA struct {
	Known      bool     `json:"known"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Minutes    *float64 `json:"eta_minutes,omitempty"`
}

// CourierLocationPayload is published on an order's tracking channel for
// every position report of its courier.
type CourierLocationPayload struct {
	OrderID    int64     `json:"order_id"`
	CourierID  int64     `json:"courier_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	ETA        ETA       `json:"eta"`
	RecordedAt time.Time `json:"recorded_at"`
}

// CourierAssignedPayload is published when a courier is attached to an order.
type CourierAssignedPayload struct {
	OrderID     int64     `json:"order_id"`
	CourierID   int64     `json:"courier_id"`
	CourierName string    `json:"courier_name"`
	Transport   string    `json:"transport"`
	Score       *float64  `json:"score"`
	ETA         ETA       `json:"eta"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// OrderStatusPayload is published when an order moves along its lifecycle.
type OrderStatusPayload struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	ChangedAt time.Time `json:"changed_at"`
}
