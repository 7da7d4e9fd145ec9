package http

import (
	"net/http"

	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/event"

	"github.com/labstack/echo/v4"
)

// Track handles GET /api/public/track/:token.
//
// @Summary      Public tracking view
// @Tags         public
// @Produce      json
// @Param        token  path      string  true  "Tracking token"
// @Success      200    {object}  trackingResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/public/track/{token} [get]
func (s *Server) Track(c echo.Context) error {
	query, err := queries.NewTrackingViewQuery(c.Param("token"))
	if err != nil {
		return err
	}
	view, err := s.h.TrackingView.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTracking(view))
}

// TrackStream handles GET /api/public/track/:token/stream.
//
// @Summary      Public tracking event stream
// @Tags         public
// @Produce      text/event-stream
// @Param        token          path    string  true   "Tracking token"
// @Param        Last-Event-ID  header  int     false  "Resume cursor"
// @Param        last_id        query   int     false  "Resume cursor when the header is absent"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /api/public/track/{token}/stream [get]
func (s *Server) TrackStream(c echo.Context) error {
	filter, err := s.trackingFilter(c)
	if err != nil {
		return err
	}
	cursor, err := cursorParam(c)
	if err != nil {
		return err
	}
	return s.stream(c, feed.StreamRequest{Cursor: cursor, Filter: filter, Audience: "public"})
}

// TrackPoll handles GET /api/public/track/:token/poll.
//
// @Summary      Public tracking long-poll
// @Tags         public
// @Produce      json
// @Param        token    path   string  true   "Tracking token"
// @Param        last_id  query  int     false  "Cursor"
// @Param        timeout  query  number  false  "Max wait in seconds, capped at 30"
// @Success      200  {object}  pollResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/public/track/{token}/poll [get]
func (s *Server) TrackPoll(c echo.Context) error {
	filter, err := s.trackingFilter(c)
	if err != nil {
		return err
	}
	cursor, err := optionalInt64Query(c, "last_id")
	if err != nil {
		return err
	}
	return s.poll(c, cursor, filter)
}

// trackingFilter validates the token and scopes reads to its order channel.
func (s *Server) trackingFilter(c echo.Context) (event.Filter, error) {
	query, err := queries.NewTrackingViewQuery(c.Param("token"))
	if err != nil {
		return event.Filter{}, err
	}
	o, err := s.h.TrackingView.Authorize(c.Request().Context(), query)
	if err != nil {
		return event.Filter{}, err
	}
	return event.Filter{Channels: []string{event.TrackingChannel(o.ID())}}, nil
}
