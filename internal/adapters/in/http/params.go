package http

import (
	"strconv"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// int64Param parses a positive path parameter.
func int64Param(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return v, nil
}

// optionalInt64Query returns nil for a missing parameter.
func optionalInt64Query(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &v, nil
}

func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// cursorParam reads the resume cursor from the Last-Event-ID header, falling
// back to the last_id query parameter.
func cursorParam(c echo.Context) (*int64, error) {
	if raw := strings.TrimSpace(c.Request().Header.Get("Last-Event-ID")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("Last-Event-ID", err)
		}
		return &v, nil
	}
	return optionalInt64Query(c, "last_id")
}

// timeoutParam reads a wait in seconds. Fractions are allowed.
func timeoutParam(c echo.Context, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(c.QueryParam("timeout"))
	if raw == "" {
		return def, nil
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 {
		return 0, errs.NewValueIsInvalidError("timeout")
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func filterParams(c echo.Context, restaurantID *int64) event.Filter {
	return event.Filter{
		Channels:     event.ParseChannels(c.QueryParam("channels")),
		RestaurantID: restaurantID,
	}
}
