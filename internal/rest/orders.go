package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"toolsPlaza/domain"
	"toolsPlaza/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, order domain.Order) (string, error)
		GetOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
		GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
		ConfirmPayment(ctx context.Context, orderID, transactionID string) (bool, error)
		DeleteOrder(ctx context.Context, id string) (int64, error)
	}

	ConfirmPaymentInput struct {
		TransactionID string `json:"transactionId" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var order domain.Order

	if err := c.Bind(&order); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	id, err := h.ordersService.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to create order", err)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{"insertedId": id}))
}

// GetOrdersByEmail lists the caller's own orders. The self gate has already
// matched the path email against the token identity.
func (h *OrdersHandler) GetOrdersByEmail(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetOrdersByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to get orders by email", err)
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to get order by id", err)
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// ConfirmPayment records the completed charge for an order and echoes the
// applied patch. Replays of the same confirmation are harmless.
func (h *OrdersHandler) ConfirmPayment(c echo.Context) error {
	id := c.Param("id")

	var request ConfirmPaymentInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate payment confirmation", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	confirmed, err := h.ordersService.ConfirmPayment(ctx, id, request.TransactionID)
	if err != nil {
		logger.Error("Failed to confirm payment", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"paid":          true,
		"transactionId": request.TransactionID,
		"modified":      confirmed,
	})
}

func (h *OrdersHandler) DeleteOrder(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deleted, err := h.ordersService.DeleteOrder(ctx, id)
	if err != nil {
		logger.Error("Failed to delete order", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]int64{"deletedCount": deleted}))
}
