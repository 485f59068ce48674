package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolsPlaza/domain"
	"toolsPlaza/internal/middleware"
	"toolsPlaza/internal/rest"
	"toolsPlaza/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrdersService struct{}

func (stubOrdersService) CreateOrder(_ context.Context, _ domain.Order) (string, error) {
	return "order-1", nil
}

func (stubOrdersService) GetOrdersByEmail(_ context.Context, email string) ([]domain.Order, error) {
	return []domain.Order{{Email: email}}, nil
}

func (stubOrdersService) GetOrderByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (stubOrdersService) ConfirmPayment(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func (stubOrdersService) DeleteOrder(_ context.Context, _ string) (int64, error) {
	return 1, nil
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler

	SetupRootRoutes(e)
	SetupOrdersRoutes(e, rest.NewOrdersHandler(stubOrdersService{}), middleware.AuthMiddleware())

	return e
}

func TestGreeting(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World! From ToolsPlaza.", rec.Body.String())
}

func TestOrdersByEmail_RequiresToken(t *testing.T) {
	utils.InitJWT("test-secret")
	e := newServer()

	req := httptest.NewRequest(http.MethodGet, "/orders/a@x.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrdersByEmail_SelfMatch(t *testing.T) {
	utils.InitJWT("test-secret")
	e := newServer()

	token, err := utils.GenerateJWT("a@x.com")
	require.NoError(t, err)

	// own orders succeed
	req := httptest.NewRequest(http.MethodGet, "/orders/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// someone else's orders are forbidden
	req = httptest.NewRequest(http.MethodGet, "/orders/b@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOrderByID_PublicNullOnMissing(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodGet, "/orders/order/507f1f77bcf86cd799439011", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}
