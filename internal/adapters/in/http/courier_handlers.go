package http

import (
	"net/http"
	"time"

	"dispatch/internal/adapters/in/http/middleware"
	"dispatch/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// ReportLocation handles POST /api/courier/location.
//
// @Summary      Report the courier position
// @Description  Updates the courier snapshot and publishes the position and ETA to every order in transit.
// @Tags         courier
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      locationRequest  true  "Position"
// @Success      200   {object}  locationResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/courier/location [post]
func (s *Server) ReportLocation(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	command, err := commands.NewIngestLocationCommand(
		claims.UserID,
		*req.Latitude, *req.Longitude,
		req.Accuracy, req.Speed, req.Heading,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	res, err := s.h.IngestLocation.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locationResponse{Success: true, ActiveOrders: res.ActiveOrders})
}

// ChangeOrderStatus handles POST /api/courier/orders/:id/status.
//
// @Summary      Move an assigned order along its lifecycle
// @Tags         courier
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Order id"
// @Param        body  body      orderStatusRequest  true  "New status"
// @Success      200   {object}  orderStatusResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/courier/orders/{id}/status [post]
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}
	orderID, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	command, err := commands.NewChangeOrderStatusCommand(claims.UserID, orderID, req.Status)
	if err != nil {
		return err
	}
	o, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderStatus(o))
}
