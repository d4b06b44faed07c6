package service

import (
	"context"
	"testing"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/repository"
	"github.com/gemgeek/alx-listing-app-deployed/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPropertyService_List_Success(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewPropertyService(repo, 0)

	props := []domain.Property{{ID: "1", Name: "Cottage"}, {ID: "2", Name: "Loft"}}
	repo.EXPECT().List(mock.Anything).Return(props)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, props, res)
}

func TestPropertyService_List_Stable(t *testing.T) {
	catalog, err := repository.NewSeedCatalog()
	require.NoError(t, err)
	svc := NewPropertyService(catalog, 0)

	first, err := svc.List(context.Background())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPropertyService_Get_Success(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewPropertyService(repo, 0)

	repo.EXPECT().GetByID(mock.Anything, "1").Return(domain.Property{ID: "1", Name: "Cottage"}, nil)

	p, err := svc.Get(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "Cottage", p.Name)
}

func TestPropertyService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewPropertyService(repo, 0)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(domain.Property{}, domain.ErrPropertyNotFound)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyService_List_LatencyCancelled(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewPropertyService(repo, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestReviewService_ListByProperty(t *testing.T) {
	catalog, err := repository.NewSeedCatalog()
	require.NoError(t, err)
	svc := NewReviewService(catalog, 0)

	reviews, err := svc.ListByProperty(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, "r1", reviews[0].ID)
	assert.Equal(t, "Alice", reviews[0].User)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "r2", reviews[1].ID)
	assert.Equal(t, "Bob", reviews[1].User)
	assert.Equal(t, 4, reviews[1].Rating)
}

func TestReviewService_ListByProperty_UnknownProperty(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewReviewService(repo, 0)

	repo.EXPECT().ListReviews(mock.Anything, "404").Return([]domain.Review{})

	reviews, err := svc.ListByProperty(context.Background(), "404")

	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
