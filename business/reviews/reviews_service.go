package reviews

import (
	"context"
	"errors"

	"toolsPlaza/domain"

	"github.com/go-playground/validator/v10"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	Insert(ctx context.Context, review domain.Review) (string, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
}

type reviewsService struct {
	reviewRepo ReviewRepository
	validate   *validator.Validate
}

func NewReviewsService(reviewRepo ReviewRepository, validate *validator.Validate) *reviewsService {
	return &reviewsService{
		reviewRepo: reviewRepo,
		validate:   validate,
	}
}

func (s *reviewsService) CreateReview(ctx context.Context, review domain.Review) (string, error) {
	if err := s.validate.Var(review.Message, "required"); err != nil {
		return "", errors.New("review message is required")
	}
	if err := s.validate.Var(review.Rating, "gte=1,lte=5"); err != nil {
		return "", errors.New("review rating must be between 1 and 5")
	}

	return s.reviewRepo.Insert(ctx, review)
}

// GetAllReviews lists reviews newest-first.
func (s *reviewsService) GetAllReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.FindAll(ctx)
}
