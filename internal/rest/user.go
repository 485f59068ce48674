package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"toolsPlaza/domain"
	"toolsPlaza/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	SyncUser(ctx context.Context, email string, patch domain.User) (domain.UpsertResult, string, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteAdmin(ctx context.Context, requesterEmail, targetEmail string) (int64, error)
	UpsertUserInfo(ctx context.Context, email string, info domain.UserInfo) (domain.UpsertResult, error)
	GetUserInfo(ctx context.Context, email string) (*domain.UserInfo, error)
}

type UserHandler struct {
	userService UserService
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		timeout:     10 * time.Second,
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// SyncUser upserts the profile named in the path and hands back a fresh
// bearer token alongside the write result.
func (h *UserHandler) SyncUser(c echo.Context) error {
	email := c.Param("email")

	var patch domain.User
	if err := c.Bind(&patch); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, token, err := h.userService.SyncUser(ctx, email, patch)
	if err != nil {
		logger.Error("Failed to sync user", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"result": result,
		"token":  token,
	})
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isAdmin, err := h.userService.IsAdmin(ctx, email)
	if err != nil {
		logger.Error("Failed to check admin role", err)
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"admin": isAdmin})
}

func (h *UserHandler) PromoteAdmin(c echo.Context) error {
	targetEmail := c.Param("email")

	requesterEmail, ok := c.Get("email").(string)
	if !ok || requesterEmail == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	matched, err := h.userService.PromoteAdmin(ctx, requesterEmail, targetEmail)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.JSON(http.StatusForbidden, ResponseError{Message: "Forbidden Access."})
		}
		logger.Error("Failed to promote user", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]int64{"matchedCount": matched}))
}

func (h *UserHandler) UpsertUserInfo(c echo.Context) error {
	email := c.Param("email")

	var info domain.UserInfo
	if err := c.Bind(&info); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.userService.UpsertUserInfo(ctx, email, info)
	if err != nil {
		logger.Error("Failed to upsert user info", err)
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *UserHandler) GetUserInfo(c echo.Context) error {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	info, err := h.userService.GetUserInfo(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to get user info", err)
		return err
	}

	return c.JSON(http.StatusOK, info)
}
