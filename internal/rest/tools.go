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

type (
	ToolsHandler struct {
		toolsService ToolsService
		timeout      time.Duration
	}

	ToolsService interface {
		CreateTool(ctx context.Context, tool domain.Tool) (string, error)
		GetAllTools(ctx context.Context) ([]domain.Tool, error)
		GetToolByID(ctx context.Context, id string) (*domain.Tool, error)
	}
)

func NewToolsHandler(toolsService ToolsService) *ToolsHandler {
	return &ToolsHandler{
		toolsService: toolsService,
		timeout:      10 * time.Second,
	}
}

func (h *ToolsHandler) CreateTool(c echo.Context) error {
	var tool domain.Tool

	if err := c.Bind(&tool); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	id, err := h.toolsService.CreateTool(ctx, tool)
	if err != nil {
		logger.Error("Failed to create tool", err)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{"insertedId": id}))
}

func (h *ToolsHandler) GetAllTools(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tools, err := h.toolsService.GetAllTools(ctx)
	if err != nil {
		logger.Error("Failed to get all tools", err)
		return err
	}

	return c.JSON(http.StatusOK, tools)
}

// GetToolByID resolves a missing tool to a null body, matching what
// storefront clients already expect.
func (h *ToolsHandler) GetToolByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tool, err := h.toolsService.GetToolByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to get tool by id", err)
		return err
	}

	return c.JSON(http.StatusOK, tool)
}
