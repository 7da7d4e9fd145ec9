// Package middleware authenticates staff, admin and courier requests.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Roles carried in the role claim.
const (
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
	RoleCourier = "courier"
)

const claimsKey = "claims"

// Claims is the access token payload. RestaurantID is absent for platform
// admins.
type Claims struct {
	UserID       int64  `json:"user_id"`
	Role         string `json:"role"`
	RestaurantID *int64 `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

// Auth validates an HS256 bearer token and stores its claims in the context.
// EventSource clients cannot set headers, so the token may also arrive in the
// access_token query parameter.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearer(c)
			if err != nil {
				return err
			}

			claims := &Claims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.UserID <= 0 || claims.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

func bearer(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		if q := c.QueryParam("access_token"); q != "" {
			return q, nil
		}
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// ClaimsFrom returns the claims stored by Auth.
func ClaimsFrom(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// SignToken issues a token for claims. Tokens are normally minted by the
// account service; this is used by tooling and tests.
func SignToken(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
