package middleware

import (
	"context"
	"net/http"
	"strings"

	"toolsPlaza/pkg/logger"
	"toolsPlaza/pkg/utils"

	jsonres "toolsPlaza/pkg/response"

	"github.com/labstack/echo/v4"
)

// RoleResolver resolves an authenticated email to its stored admin status.
type RoleResolver interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AuthMiddleware verifies the bearer token and attaches the identity to the
// request context. Every failure path returns without invoking the next
// handler, so a rejected request can never reach business logic.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			claims, err := utils.ParseJWT(tokenParts[1])
			if err != nil {
				if utils.IsExpired(err) {
					return c.JSON(http.StatusForbidden, jsonres.Error(
						"FORBIDDEN", "Token expired", nil,
					))
				}
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Invalid token", nil,
				))
			}

			c.Set("email", claims.Email)

			return next(c)
		}
	}
}

// SelfOnly restricts a route to the identity named in the :email path
// parameter. Access succeeds only when the two emails match exactly.
func SelfOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get("email").(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "User not authenticated", nil,
				))
			}

			if c.Param("email") != email {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "You can only access your own data", nil,
				))
			}

			return next(c)
		}
	}
}

// AdminOnly requires the authenticated identity to resolve to an existing
// admin user. The role comes from the store, not from a token claim, so a
// demotion takes effect immediately.
func AdminOnly(roles RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get("email").(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "User not authenticated", nil,
				))
			}

			isAdmin, err := roles.IsAdmin(c.Request().Context(), email)
			if err != nil {
				logger.Error("Failed to resolve requester role", err)
				return c.JSON(http.StatusInternalServerError, jsonres.Error(
					"INTERNAL", "Something went wrong", nil,
				))
			}

			if !isAdmin {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}
