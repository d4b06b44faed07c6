package dto

// BookingRequest mirrors the booking form. Required-field checks happen in
// the service so that an empty string and a missing key behave the same.
type BookingRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billingAddress"`
}
