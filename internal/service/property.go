package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/service/ports"
)

type PropertyService struct {
	repo    ports.CatalogRepo
	latency time.Duration
}

func NewPropertyService(repo ports.CatalogRepo, latency time.Duration) *PropertyService {
	return &PropertyService{
		repo:    repo,
		latency: latency,
	}
}

func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.repo.List(ctx), nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", id, err)
	}

	return &p, nil
}

// wait simulates upstream latency. A zero duration returns immediately.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated latency: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}
