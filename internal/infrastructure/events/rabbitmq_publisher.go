package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"tuition_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const RoutingKeyFeeReconciled = "fee.reconciled"

// Publisher is an event publisher that owns broker resources.
type Publisher interface {
	interfaces.IEventPublisher
	Close()
}

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes saga events to a durable topic exchange.
type RabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
}

var _ Publisher = (*RabbitMQPublisher)(nil)

// NopPublisher is used when no broker is configured or reachable at startup.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) PublishFeeReconciled(_ context.Context, e interfaces.FeeReconciledEvent) error {
	log.Printf("[events][nop] publish skipped routing_key=%s user_id=%s fee_type=%s", RoutingKeyFeeReconciled, e.UserID, e.FeeType)
	return nil
}

func (NopPublisher) Close() {}

// NewPublisher connects to amqpURL, falling back to NopPublisher when the URL is
// empty or the broker cannot be reached.
func NewPublisher(amqpURL, exchange string) Publisher {
	if strings.TrimSpace(amqpURL) == "" {
		log.Printf("[events] RABBITMQ_URL not set; events disabled")
		return NopPublisher{}
	}
	p, err := NewRabbitMQPublisher(amqpURL, exchange)
	if err != nil {
		log.Printf("[events] broker unavailable; events disabled err=%v", err)
		return NopPublisher{}
	}
	log.Printf("[events] publishing to exchange=%s", exchange)
	return p
}

func NewRabbitMQPublisher(amqpURL, exchange string) (*RabbitMQPublisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}
	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	p, err := newPublisherOnChannel(ch, exchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisherOnChannel(ch amqpChannel, exchange string) (*RabbitMQPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &RabbitMQPublisher{channel: ch, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) PublishFeeReconciled(ctx context.Context, e interfaces.FeeReconciledEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx, p.exchange, RoutingKeyFeeReconciled, false, false, amqp091.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp091.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: e.CorrelationID,
		Timestamp:     e.OccurredAt,
		Body:          body,
	})
	if err != nil {
		log.Printf("[events][rabbitmq] publish failed exchange=%s routing_key=%s err=%v", p.exchange, RoutingKeyFeeReconciled, err)
		return err
	}
	log.Printf("[events][rabbitmq] published exchange=%s routing_key=%s user_id=%s fee_type=%s", p.exchange, RoutingKeyFeeReconciled, e.UserID, e.FeeType)
	return nil
}

func (p *RabbitMQPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}
