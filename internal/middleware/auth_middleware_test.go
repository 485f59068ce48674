package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolsPlaza/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(target string) (*echo.Echo, *httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e, rec, e.NewContext(req, rec)
}

// next handler that records whether it ran
func probe(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.String(http.StatusOK, "ok")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	utils.InitJWT("test-secret")
	_, rec, c := setup("/user")

	called := false
	err := AuthMiddleware()(probe(&called))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "downstream logic must not run after rejection")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	utils.InitJWT("test-secret")
	_, rec, c := setup("/user")
	c.Request().Header.Set("Authorization", "Token abc")

	called := false
	err := AuthMiddleware()(probe(&called))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	utils.InitJWT("test-secret")
	_, rec, c := setup("/user")
	c.Request().Header.Set("Authorization", "Bearer not-a-token")

	called := false
	err := AuthMiddleware()(probe(&called))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	utils.InitJWT("test-secret")

	claims := utils.Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, rec, c := setup("/user")
	c.Request().Header.Set("Authorization", "Bearer "+token)

	called := false
	err = AuthMiddleware()(probe(&called))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("a@x.com")
	require.NoError(t, err)

	_, rec, c := setup("/user")
	c.Request().Header.Set("Authorization", "Bearer "+token)

	called := false
	err = AuthMiddleware()(probe(&called))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "a@x.com", c.Get("email"))
}

func TestSelfOnly(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		_, rec, c := setup("/orders/a@x.com")
		c.SetParamNames("email")
		c.SetParamValues("a@x.com")
		c.Set("email", "a@x.com")

		called := false
		require.NoError(t, SelfOnly()(probe(&called))(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("mismatch", func(t *testing.T) {
		_, rec, c := setup("/orders/b@x.com")
		c.SetParamNames("email")
		c.SetParamValues("b@x.com")
		c.Set("email", "a@x.com")

		called := false
		require.NoError(t, SelfOnly()(probe(&called))(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, rec, c := setup("/orders/a@x.com")
		c.SetParamNames("email")
		c.SetParamValues("a@x.com")

		called := false
		require.NoError(t, SelfOnly()(probe(&called))(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})
}

type fakeRoles struct {
	admins map[string]bool
}

func (f fakeRoles) IsAdmin(_ context.Context, email string) (bool, error) {
	return f.admins[email], nil
}

func TestAdminOnly(t *testing.T) {
	roles := fakeRoles{admins: map[string]bool{"admin@x.com": true}}

	t.Run("admin", func(t *testing.T) {
		_, rec, c := setup("/user/admin/b@x.com")
		c.Set("email", "admin@x.com")

		called := false
		require.NoError(t, AdminOnly(roles)(probe(&called))(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("non-admin", func(t *testing.T) {
		_, rec, c := setup("/user/admin/b@x.com")
		c.Set("email", "user@x.com")

		called := false
		require.NoError(t, AdminOnly(roles)(probe(&called))(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})
}
