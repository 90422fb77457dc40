// Package event announces recorded purchases to a message broker.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cinix-booking/internal/data/entity"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const TicketPurchasedQueue = "ticket.purchased"

// TicketPurchased is the message body published for each recorded ticket.
type TicketPurchased struct {
	TicketID    string    `json:"ticket_id"`
	BookingCode string    `json:"booking_code"`
	UserID      string    `json:"user_id"`
	MovieTitle  string    `json:"movie_title"`
	Cinema      string    `json:"cinema"`
	Showtime    string    `json:"showtime"`
	Seats       []string  `json:"seats"`
	TotalAmount int64     `json:"total_amount"`
	BookedAt    time.Time `json:"booked_at"`
}

func NewTicketPurchased(t entity.Ticket) TicketPurchased {
	return TicketPurchased{
		TicketID:    t.ID,
		BookingCode: t.BookingCode,
		UserID:      t.UserID,
		MovieTitle:  t.MovieTitle,
		Cinema:      t.Cinema,
		Showtime:    t.Showtime,
		Seats:       t.Seats,
		TotalAmount: t.TotalAmount,
		BookedAt:    t.BookingDate,
	}
}

type Publisher interface {
	PublishTicketPurchased(ctx context.Context, ticket entity.Ticket) error
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishTicketPurchased(context.Context, entity.Ticket) error { return nil }

func (noopPublisher) Close() error { return nil }

type amqpPublisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
}

// NewAMQPPublisher dials RabbitMQ and declares the durable purchase queue.
func NewAMQPPublisher(url string, log *zap.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		TicketPurchasedQueue, // name
		true,                 // durable
		false,                // autoDelete
		false,                // exclusive
		false,                // noWait
		nil,                  // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare %s queue: %w", TicketPurchasedQueue, err)
	}

	return &amqpPublisher{
		conn: conn,
		ch:   ch,
		log:  log.With(zap.String("publisher", "amqp")),
	}, nil
}

func (p *amqpPublisher) PublishTicketPurchased(ctx context.Context, ticket entity.Ticket) error {
	body, err := json.Marshal(NewTicketPurchased(ticket))
	if err != nil {
		return fmt.Errorf("encode ticket event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",                   // exchange
		TicketPurchasedQueue, // routing key
		false,                // mandatory
		false,                // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ticket.ID,
			Timestamp:    ticket.BookingDate,
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("Failed to publish ticket event",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID),
		)
		return fmt.Errorf("publish ticket event: %w", err)
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
