package middleware

import (
	"errors"
	"net/http"

	"toolsPlaza/domain"
	"toolsPlaza/pkg/logger"

	jsonres "toolsPlaza/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler maps domain errors that escape handlers onto HTTP statuses.
// Store and gateway detail stays in the server log; clients get a short
// generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var code, message string

	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		status, code, message = http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header"
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrForbidden):
		status, code, message = http.StatusForbidden, "FORBIDDEN", "Forbidden access"
	case errors.Is(err, domain.ErrInvalidID):
		status, code, message = http.StatusBadRequest, "BAD_REQUEST", "Invalid identifier"
	case errors.Is(err, domain.ErrNotFound):
		status, code, message = http.StatusNotFound, "NOT_FOUND", "Not found"
	case errors.Is(err, domain.ErrInvalidAmount):
		status, code, message = http.StatusBadRequest, "BAD_REQUEST", "Invalid payment amount"
	case errors.Is(err, domain.ErrGatewayUnavailable):
		logger.Error("Payment gateway failure", err)
		status, code, message = http.StatusBadGateway, "BAD_GATEWAY", "Payment gateway unavailable"
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Error("Store failure", err)
		status, code, message = http.StatusInternalServerError, "INTERNAL", "Something went wrong"
	default:
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}
		logger.Error("Unhandled error", err)
		status, code, message = http.StatusInternalServerError, "INTERNAL", "Something went wrong"
	}

	if err := c.JSON(status, jsonres.Error(code, message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
