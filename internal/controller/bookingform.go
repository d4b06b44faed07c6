package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
)

const (
	RequiredFieldsMessage = "First Name, Last Name, and Email are required."
	SubmitFailedMessage   = "Failed to submit booking. Please try again."
)

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrSubmitInProgress = errors.New("booking submission in progress")
	ErrAlreadyConfirmed = errors.New("booking already confirmed, reset the form first")
)

type FormStatus int

const (
	Editing FormStatus = iota
	Submitting
	Confirmed
)

func (s FormStatus) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Confirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("FormStatus(%d)", int(s))
	}
}

// FormState is a snapshot of the booking form for rendering.
type FormState struct {
	Status    FormStatus
	Fields    domain.BookingRequest
	Error     string
	BookingID string
}

// Success is the confirmation line shown once a booking went through.
func (s FormState) Success() string {
	if s.Status != Confirmed {
		return ""
	}
	return "Booking confirmed! Your booking ID is: " + s.BookingID
}

type BookingSubmitter interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
}

type BookingForm struct {
	submitter BookingSubmitter

	mu    sync.Mutex
	state FormState
	subs  []func(FormState)
}

func NewBookingForm(submitter BookingSubmitter) *BookingForm {
	return &BookingForm{submitter: submitter}
}

func (f *BookingForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *BookingForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Status == Editing
}

// Subscribe registers a render callback run after every change. It is called
// with the form locked and must not call back into it.
func (f *BookingForm) Subscribe(fn func(FormState)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}

// Set changes one field by its JSON name and leaves the others alone.
func (f *BookingForm) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state.Status {
	case Submitting:
		return ErrSubmitInProgress
	case Confirmed:
		return ErrAlreadyConfirmed
	}

	target, ok := fieldRef(&f.state.Fields, field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*target = value

	f.notifyLocked()
	return nil
}

// Submit validates locally, then sends the booking and blocks until it
// resolves. Failures are reported through the returned state, not the error.
func (f *BookingForm) Submit(ctx context.Context) (FormState, error) {
	f.mu.Lock()
	switch f.state.Status {
	case Submitting:
		f.mu.Unlock()
		return f.State(), ErrSubmitInProgress
	case Confirmed:
		f.mu.Unlock()
		return f.State(), ErrAlreadyConfirmed
	}

	fields := f.state.Fields
	if fields.FirstName == "" || fields.LastName == "" || fields.Email == "" {
		f.state.Error = RequiredFieldsMessage
		f.notifyLocked()
		st := f.state
		f.mu.Unlock()
		return st, nil
	}

	f.state.Status = Submitting
	f.state.Error = ""
	f.notifyLocked()
	f.mu.Unlock()

	conf, err := f.submitter.CreateBooking(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state.Status = Editing
		f.state.Error = submitErrorMessage(err, SubmitFailedMessage)
	} else {
		f.state = FormState{Status: Confirmed, BookingID: conf.BookingID}
	}
	f.notifyLocked()

	return f.state, nil
}

// Reset clears every field and any message and goes back to Editing. It is
// refused while a submission is in flight.
func (f *BookingForm) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Status == Submitting {
		return ErrSubmitInProgress
	}
	f.state = FormState{Status: Editing}
	f.notifyLocked()
	return nil
}

func (f *BookingForm) notifyLocked() {
	for _, fn := range f.subs {
		fn(f.state)
	}
}

func fieldRef(r *domain.BookingRequest, field string) (*string, bool) {
	switch field {
	case "firstName":
		return &r.FirstName, true
	case "lastName":
		return &r.LastName, true
	case "email":
		return &r.Email, true
	case "phoneNumber":
		return &r.PhoneNumber, true
	case "cardNumber":
		return &r.CardNumber, true
	case "expirationDate":
		return &r.ExpirationDate, true
	case "cvv":
		return &r.CVV, true
	case "billingAddress":
		return &r.BillingAddress, true
	default:
		return nil, false
	}
}
