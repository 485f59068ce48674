package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"toolsPlaza/domain"
	"toolsPlaza/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PaymentsHandler struct {
		validate        *validator.Validate
		paymentsService PaymentsService
		timeout         time.Duration
	}

	PaymentsService interface {
		CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	}

	PaymentIntentInput struct {
		Price float64 `json:"price" validate:"required"`
	}
)

func NewPaymentsHandler(paymentsService PaymentsService) *PaymentsHandler {
	return &PaymentsHandler{
		validate:        validator.New(),
		paymentsService: paymentsService,
		timeout:         20 * time.Second,
	}
}

// CreatePaymentIntent forwards the order price to the card gateway and
// returns the client secret the storefront needs to complete the charge.
func (h *PaymentsHandler) CreatePaymentIntent(c echo.Context) error {
	var request PaymentIntentInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate payment intent request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	clientSecret, err := h.paymentsService.CreatePaymentIntent(ctx, request.Price)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "price must be positive"})
		}
		logger.Error("Failed to create payment intent", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
