package dto

import (
	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
)

type PropertyResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Rating   float64 `json:"rating"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	User       string `json:"user"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type BookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func (r BookingRequest) ToDomain() domain.BookingRequest {
	return domain.BookingRequest{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		CardNumber:     r.CardNumber,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
		BillingAddress: r.BillingAddress,
	}
}

func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:       p.ID,
		Name:     p.Name,
		Location: p.Location,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Rating:   p.Rating,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		User:       r.User,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func ToBookingResponse(c *domain.BookingConfirmation) BookingResponse {
	return BookingResponse{
		Message:   c.Message,
		BookingID: c.BookingID,
	}
}

func (p PropertyResponse) ToDomain() domain.Property {
	return domain.Property{
		ID:       p.ID,
		Name:     p.Name,
		Location: p.Location,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Rating:   p.Rating,
	}
}

func (r ReviewResponse) ToDomain() domain.Review {
	return domain.Review{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		User:       r.User,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func FromDomainBookingRequest(r domain.BookingRequest) BookingRequest {
	return BookingRequest{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		CardNumber:     r.CardNumber,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
		BillingAddress: r.BillingAddress,
	}
}
