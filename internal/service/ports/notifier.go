package ports

import (
	"context"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking)
}
