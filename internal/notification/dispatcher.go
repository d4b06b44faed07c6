package notification

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const defaultSendTimeout = 10 * time.Second

type Sink interface {
	Name() string
	Send(ctx context.Context, b *domain.Booking) error
}

// Dispatcher fans a booking out to every sink on a worker pool so the
// booking response never waits on Telegram or RabbitMQ.
type Dispatcher struct {
	sinks   []Sink
	pool    *workerpool.WorkerPool
	logger  logger.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(workers int, timeout time.Duration, log logger.Logger, sinks ...Sink) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	return &Dispatcher{
		sinks:   sinks,
		pool:    workerpool.New(workers),
		logger:  log,
		timeout: timeout,
	}
}

func (d *Dispatcher) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	if b == nil || len(d.sinks) == 0 {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notification dropped (dispatcher closed)", logger.String("booking_id", b.ID))
		return
	}

	booking := *b
	for _, s := range d.sinks {
		d.pool.Submit(func() {
			d.send(ctx, s, &booking)
		})
	}
}

func (d *Dispatcher) send(ctx context.Context, s Sink, b *domain.Booking) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	if err := s.Send(ctx, b); err != nil {
		d.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send booking notification",
			logger.String("sink", s.Name()),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	d.logger.LogAttrs(ctx, logger.DebugLevel, "booking notification sent",
		logger.String("sink", s.Name()),
		logger.String("booking_id", b.ID),
		logger.Duration("took", time.Since(start)),
	)
}

// Close waits for queued notifications and rejects new ones.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.pool.StopWait()
}
