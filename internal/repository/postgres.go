package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PostgresSource reads the catalog tables once at startup. The rows are
// copied into a Catalog; the database is not consulted afterwards.
type PostgresSource struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresSource(db *dbpg.DB) *PostgresSource {
	return &PostgresSource{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	properties, err := s.properties(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews(ctx)
	if err != nil {
		return nil, err
	}

	return NewCatalog(properties, reviews)
}

func (s *PostgresSource) properties(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT id, name, location, price, image_url, rating
			  FROM properties
			  ORDER BY seq`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var res []domain.Property
	for rows.Next() {
		var p domain.Property
		if err = rows.Scan(&p.ID, &p.Name, &p.Location, &p.Price, &p.ImageURL, &p.Rating); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (s *PostgresSource) reviews(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT id, property_id, user_name, rating, comment
			  FROM reviews
			  ORDER BY seq`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []domain.Review
	for rows.Next() {
		var r domain.Review
		if err = rows.Scan(&r.ID, &r.PropertyID, &r.User, &r.Rating, &r.Comment); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, r)
	}

	return res, rows.Err()
}
