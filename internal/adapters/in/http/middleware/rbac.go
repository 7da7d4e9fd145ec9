package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC lets through only the listed roles. It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFrom(c)
			if err != nil {
				return err
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RestaurantScope resolves the restaurant a staff request may see.
//
//   - admins see what they ask for, nil meaning every restaurant
//   - staff bound to a restaurant see only that one; asking for another is forbidden
func RestaurantScope(c echo.Context, requested *int64) (*int64, error) {
	claims, err := ClaimsFrom(c)
	if err != nil {
		return nil, err
	}
	if claims.Role == RoleAdmin || claims.RestaurantID == nil {
		return requested, nil
	}
	if requested != nil && *requested != *claims.RestaurantID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "restaurant is outside your scope")
	}
	id := *claims.RestaurantID
	return &id, nil
}
