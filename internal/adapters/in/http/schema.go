package http

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Accuracy  *float64 `json:"accuracy"  validate:"omitempty,min=0"`
	Speed     *float64 `json:"speed"     validate:"omitempty,min=0"`
	Heading   *float64 `json:"heading"   validate:"omitempty,min=0,max=360"`
}

type locationResponse struct {
	Success      bool `json:"success"`
	ActiveOrders int  `json:"active_orders"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=picked_up in_transit delivered cancelled"`
}

type orderStatusResponse struct {
	OrderID     int64                      `json:"order_id"`
	Status      string                     `json:"status"`
	StatusLabel string                     `json:"status_label"`
	StatusColor string                     `json:"status_color"`
	StatusTimes map[order.Status]time.Time `json:"status_times"`
}

type publishEventRequest struct {
	Channel      string          `json:"channel"       validate:"required,max=100"`
	Event        string          `json:"event"         validate:"required,max=50"`
	Data         json.RawMessage `json:"data"          swaggertype:"object"`
	RestaurantID *int64          `json:"restaurant_id" validate:"omitempty,gt=0"`
}

type eventResponse struct {
	ID           int64           `json:"id"`
	Channel      string          `json:"channel"`
	Event        string          `json:"event"`
	Data         json.RawMessage `json:"data" swaggertype:"object"`
	RestaurantID *int64          `json:"restaurant_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type pollResponse struct {
	Events []eventResponse `json:"events"`
	LastID int64           `json:"last_id"`
}

type snapshotResponse struct {
	Events []eventResponse `json:"events"`
	LastID int64           `json:"last_id"`
}

type cleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

type pointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type rankedCourierResponse struct {
	CourierID    int64     `json:"courier_id"`
	Name         string    `json:"name"`
	Transport    string    `json:"transport"`
	Status       string    `json:"status"`
	ActiveOrders int       `json:"active_orders"`
	Score        *float64  `json:"score"`
	ETA          event.ETA `json:"eta"`
}

type bestCourierResponse struct {
	OrderID int64                   `json:"order_id"`
	Courier *rankedCourierResponse  `json:"courier"`
	Ranked  []rankedCourierResponse `json:"ranked"`
}

type autoAssignResponse struct {
	Success bool                    `json:"success"`
	Reason  string                  `json:"reason,omitempty"`
	OrderID int64                   `json:"order_id"`
	Courier *rankedCourierResponse  `json:"courier,omitempty"`
	Ranked  []rankedCourierResponse `json:"ranked"`
}

type courierBoardResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Active       bool           `json:"is_active"`
	Status       string         `json:"status"`
	Transport    string         `json:"transport"`
	Location     *pointResponse `json:"location,omitempty"`
	LastSeenAt   *time.Time     `json:"last_seen_at,omitempty"`
	ActiveOrders int            `json:"active_orders"`
}

type trailPointResponse struct {
	CourierID  int64     `json:"courier_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type trackingCourierResponse struct {
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Transport string         `json:"transport"`
	Location  *pointResponse `json:"location,omitempty"`
}

type trackingResponse struct {
	OrderID           int64                      `json:"order_id"`
	Channel           string                     `json:"channel"`
	Status            string                     `json:"status"`
	StatusLabel       string                     `json:"status_label"`
	StatusColor       string                     `json:"status_color"`
	Address           string                     `json:"address"`
	Destination       *pointResponse             `json:"destination,omitempty"`
	Courier           *trackingCourierResponse   `json:"courier,omitempty"`
	ETA               event.ETA                  `json:"eta"`
	StatusTimes       map[order.Status]time.Time `json:"status_times"`
	CourierAssignedAt *time.Time                 `json:"courier_assigned_at,omitempty"`
}

func toPoint(l *kernel.Location) *pointResponse {
	if l == nil {
		return nil
	}
	return &pointResponse{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func toEvent(e event.Event) eventResponse {
	return eventResponse{
		ID:           e.ID,
		Channel:      e.Channel,
		Event:        string(e.Type),
		Data:         e.Payload,
		RestaurantID: e.RestaurantID,
		CreatedAt:    e.CreatedAt,
	}
}

func toEvents(events []event.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEvent(e))
	}
	return out
}

func toRanked(r services.RankedCourier) rankedCourierResponse {
	return rankedCourierResponse{
		CourierID:    r.Courier.ID(),
		Name:         r.Courier.Name(),
		Transport:    r.Courier.Transport().String(),
		Status:       r.Courier.Status().String(),
		ActiveOrders: r.ActiveOrders,
		Score:        r.KnownScore(),
		ETA:          r.ETA.Payload(),
	}
}

func toRankedList(ranked []services.RankedCourier) []rankedCourierResponse {
	out := make([]rankedCourierResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, toRanked(r))
	}
	return out
}

func toAutoAssign(r commands.AutoAssignResult) autoAssignResponse {
	resp := autoAssignResponse{
		Success: r.Success,
		Reason:  string(r.Reason),
		OrderID: r.OrderID,
		Ranked:  toRankedList(r.Ranked),
	}
	if r.Assigned != nil {
		c := toRanked(*r.Assigned)
		resp.Courier = &c
	}
	return resp
}

func toBoard(rows []queries.ListCouriersQueryResponse) []courierBoardResponse {
	out := make([]courierBoardResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, courierBoardResponse{
			ID:           r.ID,
			Name:         r.Name,
			Active:       r.Active,
			Status:       r.Status.String(),
			Transport:    r.Transport.String(),
			Location:     toPoint(r.Location),
			LastSeenAt:   r.LastSeenAt,
			ActiveOrders: r.ActiveOrders,
		})
	}
	return out
}

func toTrail(points []queries.TrailPoint) []trailPointResponse {
	out := make([]trailPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, trailPointResponse{
			CourierID:  p.CourierID,
			Latitude:   p.Location.Latitude(),
			Longitude:  p.Location.Longitude(),
			Accuracy:   p.Accuracy,
			Heading:    p.Heading,
			Speed:      p.Speed,
			RecordedAt: p.RecordedAt,
		})
	}
	return out
}

func toTracking(v queries.TrackingView) trackingResponse {
	resp := trackingResponse{
		OrderID:           v.OrderID,
		Channel:           v.Channel,
		Status:            v.Status.String(),
		StatusLabel:       v.StatusLabel,
		StatusColor:       v.StatusColor,
		Address:           v.Address,
		Destination:       toPoint(v.Destination),
		ETA:               v.ETA.Payload(),
		StatusTimes:       v.StatusTimes,
		CourierAssignedAt: v.CourierAssignedAt,
	}
	if v.Courier != nil {
		resp.Courier = &trackingCourierResponse{
			Name:      v.Courier.Name,
			Phone:     v.Courier.Phone,
			Transport: v.Courier.Transport.String(),
			Location:  toPoint(v.Courier.Location),
		}
	}
	return resp
}

func toOrderStatus(o *order.Order) orderStatusResponse {
	return orderStatusResponse{
		OrderID:     o.ID(),
		Status:      o.Status().String(),
		StatusLabel: o.Status().Label(),
		StatusColor: o.Status().Color(),
		StatusTimes: o.StatusTimes(),
	}
}
