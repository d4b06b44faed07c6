package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/streadway/amqp"
)

const (
	EventBookingCreated = "booking.created"
	DefaultQueue        = "bookings_queue"
)

type bookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func encodeBookingEvent(b *domain.Booking) ([]byte, error) {
	return json.Marshal(bookingEvent{
		Type:        EventBookingCreated,
		BookingID:   b.ID,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		CreatedAt:   b.CreatedAt.UTC(),
	})
}

// AMQPPublisher pushes booking.created events to a durable RabbitMQ queue.
type AMQPPublisher struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

func NewAMQPPublisher(url, queueName string) (*AMQPPublisher, error) {
	if queueName == "" {
		queueName = DefaultQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	return &AMQPPublisher{conn: conn, channel: ch, queueName: queueName}, nil
}

func (p *AMQPPublisher) Name() string { return "amqp" }

func (p *AMQPPublisher) Send(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("amqp: %w", err)
	}

	body, err := encodeBookingEvent(b)
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}

	// amqp.Channel is not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish("", p.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    b.ID,
		Type:         EventBookingCreated,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.queueName, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}
