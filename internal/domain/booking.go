package domain

import "time"

const BookingConfirmedMessage = "Booking confirmed!"

// BookingRequest is the guest-submitted form. Only FirstName, LastName and
// Email are required; payment fields are collected but never checked.
type BookingRequest struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	CardNumber     string
	ExpirationDate string
	CVV            string
	BillingAddress string
}

// Booking is what survives a successful request. Card data is not part of it.
type Booking struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingConfirmation struct {
	Message   string
	BookingID string
	Booking   *Booking
}
