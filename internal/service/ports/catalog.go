package ports

import (
	"context"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
)

type CatalogRepo interface {
	List(ctx context.Context) []domain.Property
	GetByID(ctx context.Context, id string) (domain.Property, error)
	ListReviews(ctx context.Context, propertyID string) []domain.Review
}
