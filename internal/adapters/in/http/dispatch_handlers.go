package http

import (
	"net/http"

	"dispatch/internal/adapters/in/http/middleware"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// BestCourier handles GET /api/dispatch/orders/:id/best-courier.
//
// @Summary      Best courier for an order
// @Description  Read-only preview; courier is null when nobody qualifies.
// @Tags         dispatch
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  bestCourierResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/dispatch/orders/{id}/best-courier [get]
func (s *Server) BestCourier(c echo.Context) error {
	res, err := s.rank(c)
	if err != nil {
		return err
	}

	resp := bestCourierResponse{OrderID: res.OrderID, Ranked: toRankedList(res.Ranked)}
	if res.Best != nil {
		best := toRanked(*res.Best)
		resp.Courier = &best
	}
	return c.JSON(http.StatusOK, resp)
}

// RankCouriers handles GET /api/dispatch/orders/:id/couriers.
//
// @Summary      Ranked candidate couriers for an order
// @Tags         dispatch
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {array}   rankedCourierResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dispatch/orders/{id}/couriers [get]
func (s *Server) RankCouriers(c echo.Context) error {
	res, err := s.rank(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRankedList(res.Ranked))
}

// AutoAssign handles POST /api/dispatch/orders/:id/auto-assign.
//
// @Summary      Attach the best courier to an order
// @Description  A refused assignment is a 200 with success=false and a reason.
// @Tags         dispatch
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  autoAssignResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dispatch/orders/{id}/auto-assign [post]
func (s *Server) AutoAssign(c echo.Context) error {
	orderID, err := s.scopedOrderID(c)
	if err != nil {
		return err
	}
	command, err := commands.NewAutoAssignCommand(orderID)
	if err != nil {
		return err
	}

	res, err := s.h.AutoAssign.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAutoAssign(res))
}

// OrderTrail handles GET /api/dispatch/orders/:id/trail.
//
// @Summary      Recorded courier path of an order
// @Tags         dispatch
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int  true   "Order id"
// @Param        limit  query     int  false  "Max points, default and cap 1000"
// @Success      200    {array}   trailPointResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/dispatch/orders/{id}/trail [get]
func (s *Server) OrderTrail(c echo.Context) error {
	orderID, err := s.scopedOrderID(c)
	if err != nil {
		return err
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTrailQuery(orderID, limit)
	if err != nil {
		return err
	}
	points, err := s.h.OrderTrail.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrail(points))
}

// ListCouriers handles GET /api/dispatch/couriers.
//
// @Summary      Courier board of a restaurant
// @Tags         dispatch
// @Produce      json
// @Security     BearerAuth
// @Param        restaurant_id  query     int  false  "Restaurant, defaults to the caller's"
// @Success      200            {array}   courierBoardResponse
// @Failure      422            {object}  errorResponse
// @Router       /api/dispatch/couriers [get]
func (s *Server) ListCouriers(c echo.Context) error {
	requested, err := optionalInt64Query(c, "restaurant_id")
	if err != nil {
		return err
	}
	restaurantID, err := middleware.RestaurantScope(c, requested)
	if err != nil {
		return err
	}
	if restaurantID == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "restaurant_id is required")
	}

	query, err := queries.NewListCouriersQuery(*restaurantID)
	if err != nil {
		return err
	}
	rows, err := s.h.ListCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBoard(rows))
}

func (s *Server) rank(c echo.Context) (queries.RankCouriersQueryResponse, error) {
	orderID, err := s.scopedOrderID(c)
	if err != nil {
		return queries.RankCouriersQueryResponse{}, err
	}
	query, err := queries.NewRankCouriersQuery(orderID)
	if err != nil {
		return queries.RankCouriersQueryResponse{}, err
	}
	return s.h.RankCouriers.Handle(c.Request().Context(), query)
}

// scopedOrderID reads the :id order and checks it belongs to a restaurant the
// caller may see. Admins and unbound staff skip the lookup.
func (s *Server) scopedOrderID(c echo.Context) (int64, error) {
	orderID, err := int64Param(c, "id")
	if err != nil {
		return 0, err
	}
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return 0, err
	}
	if claims.Role == middleware.RoleAdmin || claims.RestaurantID == nil {
		return orderID, nil
	}

	query, err := queries.NewGetOrderRestaurantQuery(orderID)
	if err != nil {
		return 0, err
	}
	restaurantID, err := s.h.OrderRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return 0, err
	}
	if _, err := middleware.RestaurantScope(c, &restaurantID); err != nil {
		return 0, err
	}
	return orderID, nil
}
