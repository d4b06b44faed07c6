package domain

type Property struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Rating   float64 `json:"rating"`
}

type Review struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	User       string `json:"user"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

const (
	MinReviewRating = 0
	MaxReviewRating = 5
)
