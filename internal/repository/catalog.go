package repository

import (
	"context"
	"fmt"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
)

// Catalog is the read-only property/review table. It is built once and never
// mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	properties []domain.Property
	byID       map[string]int
	reviews    []domain.Review
	orphans    []domain.Review
}

// NewCatalog validates the dataset and builds the lookup index. Duplicate ids
// and out-of-range ratings are rejected. Reviews pointing at a missing
// property are kept and reported through Orphans.
func NewCatalog(properties []domain.Property, reviews []domain.Review) (*Catalog, error) {
	c := &Catalog{
		properties: make([]domain.Property, 0, len(properties)),
		byID:       make(map[string]int, len(properties)),
		reviews:    make([]domain.Review, 0, len(reviews)),
	}

	for _, p := range properties {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: property with empty id", domain.ErrInvalidCatalog)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate property id %q", domain.ErrInvalidCatalog, p.ID)
		}
		c.byID[p.ID] = len(c.properties)
		c.properties = append(c.properties, p)
	}

	seen := make(map[string]struct{}, len(reviews))
	for _, r := range reviews {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: review with empty id", domain.ErrInvalidCatalog)
		}
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate review id %q", domain.ErrInvalidCatalog, r.ID)
		}
		seen[r.ID] = struct{}{}

		if r.Rating < domain.MinReviewRating || r.Rating > domain.MaxReviewRating {
			return nil, fmt.Errorf("%w: review %q rating %d out of range", domain.ErrInvalidCatalog, r.ID, r.Rating)
		}

		if _, ok := c.byID[r.PropertyID]; !ok {
			c.orphans = append(c.orphans, r)
		}
		c.reviews = append(c.reviews, r)
	}

	return c, nil
}

// NewSeedCatalog builds the catalog from the built-in dataset.
func NewSeedCatalog() (*Catalog, error) {
	return NewCatalog(SeedProperties(), SeedReviews())
}

func (c *Catalog) List(_ context.Context) []domain.Property {
	res := make([]domain.Property, len(c.properties))
	copy(res, c.properties)
	return res
}

func (c *Catalog) GetByID(_ context.Context, id string) (domain.Property, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Property{}, domain.ErrPropertyNotFound
	}
	return c.properties[i], nil
}

// ListReviews never returns nil: an unknown property id is an empty list.
func (c *Catalog) ListReviews(_ context.Context, propertyID string) []domain.Review {
	res := make([]domain.Review, 0)
	for _, r := range c.reviews {
		if r.PropertyID == propertyID {
			res = append(res, r)
		}
	}
	return res
}

// Orphans returns reviews whose property id matched nothing at build time.
func (c *Catalog) Orphans() []domain.Review {
	res := make([]domain.Review, len(c.orphans))
	copy(res, c.orphans)
	return res
}

func (c *Catalog) Len() (properties, reviews int) {
	return len(c.properties), len(c.reviews)
}
