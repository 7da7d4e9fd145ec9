package http

import (
	"net/http"
	"time"

	"dispatch/internal/adapters/in/http/middleware"
	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/event"

	"github.com/labstack/echo/v4"
)

// defaultPollWait applies when a poll request carries no timeout.
const defaultPollWait = 25 * time.Second

// Stream handles GET /api/realtime/stream.
//
// @Summary      Stream realtime events
// @Description  Server-sent events after the cursor. The stream ends with a reconnect unit carrying last_id.
// @Tags         realtime
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        Last-Event-ID  header  int     false  "Resume cursor"
// @Param        last_id        query   int     false  "Resume cursor when the header is absent"
// @Param        channels       query   string  false  "Comma separated channels"
// @Param        restaurant_id  query   int     false  "Restaurant scope"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/realtime/stream [get]
func (s *Server) Stream(c echo.Context) error {
	filter, cursor, err := s.realtimeRequest(c)
	if err != nil {
		return err
	}
	return s.stream(c, feed.StreamRequest{Cursor: cursor, Filter: filter, Audience: "staff"})
}

// Poll handles GET /api/realtime/poll.
//
// @Summary      Long-poll realtime events
// @Tags         realtime
// @Produce      json
// @Security     BearerAuth
// @Param        last_id        query  int     false  "Cursor; omitted means only new events"
// @Param        channels       query  string  false  "Comma separated channels"
// @Param        restaurant_id  query  int     false  "Restaurant scope"
// @Param        timeout        query  number  false  "Max wait in seconds, capped at 30"
// @Success      200  {object}  pollResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/realtime/poll [get]
func (s *Server) Poll(c echo.Context) error {
	filter, cursor, err := s.realtimeRequest(c)
	if err != nil {
		return err
	}
	return s.poll(c, cursor, filter)
}

// Snapshot handles GET /api/realtime/snapshot.
//
// @Summary      Most recent realtime events
// @Tags         realtime
// @Produce      json
// @Security     BearerAuth
// @Param        channels       query  string  false  "Comma separated channels"
// @Param        restaurant_id  query  int     false  "Restaurant scope"
// @Param        limit          query  int     false  "Number of events, default 50, capped at 200"
// @Success      200  {object}  snapshotResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/realtime/snapshot [get]
func (s *Server) Snapshot(c echo.Context) error {
	filter, _, err := s.realtimeRequest(c)
	if err != nil {
		return err
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return err
	}

	events, err := s.h.Feed.Snapshot(c.Request().Context(), filter, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshotResponse{
		Events: toEvents(events),
		LastID: event.LastID(0, events),
	})
}

// PublishEvent handles POST /api/realtime/events.
//
// @Summary      Append an event to the log
// @Tags         realtime
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishEventRequest  true  "Event"
// @Success      201   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/realtime/events [post]
func (s *Server) PublishEvent(c echo.Context) error {
	var req publishEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	restaurantID, err := middleware.RestaurantScope(c, req.RestaurantID)
	if err != nil {
		return err
	}

	command, err := commands.NewPublishEventCommand(req.Channel, req.Event, req.Data, restaurantID)
	if err != nil {
		return err
	}
	stored, err := s.h.PublishEvent.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEvent(stored))
}

// CleanupEvents handles POST /api/realtime/cleanup.
//
// @Summary      Delete events older than the retention horizon
// @Tags         realtime
// @Produce      json
// @Security     BearerAuth
// @Param        older_than_hours  query  int  false  "Retention in hours, default from configuration"
// @Success      200  {object}  cleanupResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/realtime/cleanup [post]
func (s *Server) CleanupEvents(c echo.Context) error {
	hours, err := intQuery(c, "older_than_hours", 0)
	if err != nil {
		return err
	}
	retention := s.defaultRetention
	if hours > 0 {
		retention = time.Duration(hours) * time.Hour
	}

	command, err := commands.NewCleanupEventsCommand(retention)
	if err != nil {
		return err
	}
	deleted, err := s.h.CleanupEvents.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cleanupResponse{Deleted: deleted})
}

// realtimeRequest reads the cursor and the scoped filter of a staff request.
func (s *Server) realtimeRequest(c echo.Context) (event.Filter, *int64, error) {
	requested, err := optionalInt64Query(c, "restaurant_id")
	if err != nil {
		return event.Filter{}, nil, err
	}
	restaurantID, err := middleware.RestaurantScope(c, requested)
	if err != nil {
		return event.Filter{}, nil, err
	}
	cursor, err := cursorParam(c)
	if err != nil {
		return event.Filter{}, nil, err
	}
	return filterParams(c, restaurantID), cursor, nil
}

func (s *Server) poll(c echo.Context, cursor *int64, filter event.Filter) error {
	timeout, err := timeoutParam(c, defaultPollWait)
	if err != nil {
		return err
	}

	res, err := s.h.Feed.Poll(c.Request().Context(), cursor, filter, timeout)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pollResponse{Events: toEvents(res.Events), LastID: res.LastID})
}

// stream runs a feed stream on the response. Once headers are sent, errors
// can only be logged.
func (s *Server) stream(c echo.Context, req feed.StreamRequest) error {
	sink, err := openSSE(c)
	if err != nil {
		s.logger.Debug().Err(err).Str("audience", req.Audience).Msg("event stream could not be opened")
		return nil
	}

	if err := s.h.Feed.Stream(c.Request().Context(), req, sink); err != nil {
		s.logger.Debug().Err(err).Str("audience", req.Audience).Msg("stream ended with error")
	}
	return nil
}
