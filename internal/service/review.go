package service

import (
	"context"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/service/ports"
)

type ReviewService struct {
	repo    ports.CatalogRepo
	latency time.Duration
}

func NewReviewService(repo ports.CatalogRepo, latency time.Duration) *ReviewService {
	return &ReviewService{
		repo:    repo,
		latency: latency,
	}
}

// ListByProperty does not check that the property exists; an unknown id
// simply has no reviews.
func (s *ReviewService) ListByProperty(ctx context.Context, propertyID string) ([]domain.Review, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, propertyID), nil
}
