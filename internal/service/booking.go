package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	ids      *BookingIDGenerator
	notifier ports.BookingNotifier
	logger   logger.Logger
	latency  time.Duration
}

func NewBookingService(
	ids *BookingIDGenerator,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	latency time.Duration,
) *BookingService {
	return &BookingService{
		ids:      ids,
		notifier: notifier,
		logger:   logger,
		latency:  latency,
	}
}

// Book validates the request and issues a booking id. Nothing is stored and
// identical requests get distinct ids.
func (s *BookingService) Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	if missing := missingFields(req); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:          s.ids.Next(),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		CreatedAt:   time.Now().UTC(),
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("email", booking.Email),
	)

	s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return &domain.BookingConfirmation{
		Message:   domain.BookingConfirmedMessage,
		BookingID: booking.ID,
		Booking:   booking,
	}, nil
}

func missingFields(req domain.BookingRequest) []string {
	var missing []string
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}
