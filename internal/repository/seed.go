package repository

import "github.com/gemgeek/alx-listing-app-deployed/internal/domain"

func SeedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:       "1",
			Name:     "Cozy Beachfront Cottage",
			Location: "Malibu, California",
			Price:    300,
			ImageURL: "https://placehold.co/600x400/007bff/white?text=Beach+Cottage",
			Rating:   4.8,
		},
		{
			ID:       "2",
			Name:     "Modern Downtown Loft",
			Location: "New York, New York",
			Price:    250,
			ImageURL: "https://placehold.co/600x400/444/white?text=Downtown+Loft",
			Rating:   4.5,
		},
		{
			ID:       "3",
			Name:     "Rustic Mountain Cabin",
			Location: "Aspen, Colorado",
			Price:    450,
			ImageURL: "https://placehold.co/600x400/28a745/white?text=Mountain+Cabin",
			Rating:   4.9,
		},
	}
}

func SeedReviews() []domain.Review {
	return []domain.Review{
		{ID: "r1", PropertyID: "1", User: "Alice", Rating: 5, Comment: "Absolutely stunning views!"},
		{ID: "r2", PropertyID: "1", User: "Bob", Rating: 4, Comment: "Great location, very cozy."},

		{ID: "r3", PropertyID: "2", User: "Charlie", Rating: 5, Comment: "The loft was modern and clean. Loved it."},

		{ID: "r4", PropertyID: "3", User: "David", Rating: 5, Comment: "Perfect mountain getaway. So peaceful."},
		{ID: "r5", PropertyID: "3", User: "Eve", Rating: 4, Comment: "Cabin was great, but the road up was tough."},
	}
}
