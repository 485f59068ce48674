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
	ReviewsHandler struct {
		reviewsService ReviewsService
		timeout        time.Duration
	}

	ReviewsService interface {
		CreateReview(ctx context.Context, review domain.Review) (string, error)
		GetAllReviews(ctx context.Context) ([]domain.Review, error)
	}
)

func NewReviewsHandler(reviewsService ReviewsService) *ReviewsHandler {
	return &ReviewsHandler{
		reviewsService: reviewsService,
		timeout:        10 * time.Second,
	}
}

func (h *ReviewsHandler) CreateReview(c echo.Context) error {
	var review domain.Review

	if err := c.Bind(&review); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	id, err := h.reviewsService.CreateReview(ctx, review)
	if err != nil {
		logger.Error("Failed to create review", err)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{"insertedId": id}))
}

func (h *ReviewsHandler) GetAllReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewsService.GetAllReviews(ctx)
	if err != nil {
		logger.Error("Failed to get all reviews", err)
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}
