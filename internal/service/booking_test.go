package service

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var bookingIDPattern = regexp.MustCompile(`^bk_\d+$`)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		CardNumber: "4111111111111111",
		CVV:        "123",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(NewBookingIDGenerator(), notifier, newTestLogger(t), 0)

	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.AnythingOfType("*domain.Booking")).Return()

	conf, err := svc.Book(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmedMessage, conf.Message)
	assert.Regexp(t, bookingIDPattern, conf.BookingID)
	assert.Equal(t, conf.BookingID, conf.Booking.ID)
	assert.Equal(t, "jane@example.com", conf.Booking.Email)
}

func TestBookingService_Book_NotifiesWithoutCardData(t *testing.T) {
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(NewBookingIDGenerator(), notifier, newTestLogger(t), 0)

	var got *domain.Booking
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { got = b }).
		Return()

	req := validRequest()
	req.FirstName = "  Jane  "
	req.PhoneNumber = "555-0100"

	conf, err := svc.Book(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, conf.BookingID, got.ID)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "555-0100", got.PhoneNumber)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestBookingService_Book_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.BookingRequest)
		missing string
	}{
		{"first name", func(r *domain.BookingRequest) { r.FirstName = "" }, "firstName"},
		{"last name", func(r *domain.BookingRequest) { r.LastName = "" }, "lastName"},
		{"email", func(r *domain.BookingRequest) { r.Email = "" }, "email"},
		{"blank email", func(r *domain.BookingRequest) { r.Email = "   " }, "email"},
		{"all", func(r *domain.BookingRequest) { *r = domain.BookingRequest{} }, "firstName, lastName, email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no notifier expectations: a rejected booking must not be announced
			notifier := mocks.NewMockBookingNotifier(t)
			svc := NewBookingService(NewBookingIDGenerator(), notifier, newTestLogger(t), 0)

			req := validRequest()
			tt.mutate(&req)

			conf, err := svc.Book(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, conf)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), "missing required fields")
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestBookingService_Book_NoFormatValidation(t *testing.T) {
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(NewBookingIDGenerator(), notifier, newTestLogger(t), 0)

	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	req := validRequest()
	req.Email = "not-an-email"
	req.CardNumber = "1234"

	_, err := svc.Book(context.Background(), req)
	assert.NoError(t, err)
}

func TestBookingService_Book_RepeatedRequestsGetDistinctIDs(t *testing.T) {
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(NewBookingIDGenerator(), notifier, newTestLogger(t), 0)

	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return().Times(3)

	seen := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		conf, err := svc.Book(context.Background(), validRequest())
		require.NoError(t, err)
		seen[conf.BookingID] = struct{}{}
	}

	assert.Len(t, seen, 3)
}

func TestBookingService_Book_LatencyHonoursContext(t *testing.T) {
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(NewBookingIDGenerator(), notifier, newTestLogger(t), time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Book(ctx, validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBookingIDGenerator_UniqueUnderConcurrency(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := &BookingIDGenerator{now: func() time.Time { return frozen }}

	const n = 200
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		assert.Regexp(t, bookingIDPattern, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestBookingIDGenerator_FollowsClock(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := &BookingIDGenerator{now: func() time.Time { return now }}

	assert.Equal(t, "bk_1700000000000", g.Next())
	assert.Equal(t, "bk_1700000000001", g.Next())

	now = now.Add(time.Second)
	assert.Equal(t, "bk_1700000001000", g.Next())
}
