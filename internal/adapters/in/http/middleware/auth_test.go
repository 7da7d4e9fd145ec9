package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "secret"

func sign(t *testing.T, claims Claims) string {
	t.Helper()
	signed, err := SignToken(secret, claims)
	require.NoError(t, err)
	return signed
}

func run(t *testing.T, req *http.Request, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, *Claims) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *Claims
	h := func(c echo.Context) error {
		seen, _ = ClaimsFrom(c)
		return c.NoContent(http.StatusOK)
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, seen
}

func TestAuth_ValidHeaderToken(t *testing.T) {
	restaurant := int64(3)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, Claims{UserID: 7, Role: RoleStaff, RestaurantID: &restaurant}))

	rec, claims := run(t, req, Auth(secret))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, RoleStaff, claims.Role)
	assert.Equal(t, int64(3), *claims.RestaurantID)
}

func TestAuth_QueryToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?access_token="+sign(t, Claims{UserID: 7, Role: RoleAdmin}), nil)

	rec, claims := run(t, req, Auth(secret))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestAuth_Rejections(t *testing.T) {
	expired := Claims{UserID: 7, Role: RoleStaff, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	foreign, err := SignToken("other", Claims{UserID: 7, Role: RoleStaff})
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7, Role: RoleStaff}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"bad format":   "Token abc",
		"wrong secret": "Bearer " + foreign,
		"expired":      "Bearer " + sign(t, expired),
		"no identity":  "Bearer " + sign(t, Claims{Role: RoleStaff}),
		"alg none":     "Bearer " + none,
		"empty bearer": "Bearer ",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec, claims := run(t, req, Auth(secret))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, claims)
		})
	}
}

func TestRBAC(t *testing.T) {
	token := sign(t, Claims{UserID: 7, Role: RoleCourier})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, _ := run(t, req, Auth(secret), RBAC(RoleStaff, RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, _ = run(t, req, Auth(secret), RBAC(RoleCourier))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRBAC_WithoutAuth(t *testing.T) {
	rec, _ := run(t, httptest.NewRequest(http.MethodGet, "/", nil), RBAC(RoleStaff))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRestaurantScope(t *testing.T) {
	e := echo.New()
	three, four := int64(3), int64(4)
	ctx := func(claims *Claims) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set(claimsKey, claims)
		return c
	}

	scope, err := RestaurantScope(ctx(&Claims{UserID: 1, Role: RoleAdmin}), nil)
	require.NoError(t, err)
	assert.Nil(t, scope)

	scope, err = RestaurantScope(ctx(&Claims{UserID: 1, Role: RoleAdmin, RestaurantID: &three}), &four)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *scope)

	scope, err = RestaurantScope(ctx(&Claims{UserID: 1, Role: RoleStaff, RestaurantID: &three}), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *scope)

	_, err = RestaurantScope(ctx(&Claims{UserID: 1, Role: RoleStaff, RestaurantID: &three}), &four)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)

	scope, err = RestaurantScope(ctx(&Claims{UserID: 1, Role: RoleStaff}), &four)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *scope)
}
