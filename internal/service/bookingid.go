package service

import (
	"strconv"
	"sync/atomic"
	"time"
)

const bookingIDPrefix = "bk_"

// BookingIDGenerator issues ids of the form bk_<unix millis>. When two
// bookings land in the same millisecond the later one is bumped forward, so
// ids are unique and strictly increasing within a process.
type BookingIDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func NewBookingIDGenerator() *BookingIDGenerator {
	return &BookingIDGenerator{now: time.Now}
}

func (g *BookingIDGenerator) Next() string {
	for {
		prev := g.last.Load()
		next := g.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return bookingIDPrefix + strconv.FormatInt(next, 10)
		}
	}
}
