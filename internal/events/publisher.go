package events

import (
	"context"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	applog "github.com/HullPerse/jekafood/internal/log"
)

const publishTimeout = 5 * time.Second

// Sink receives change messages.
type Sink interface {
	Publish(ctx context.Context, msg *StoreChanged) error
}

// Publisher sends StoreChanged messages to a topic exchange.
type Publisher struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	exchange   string
	routingKey string
	logger     *applog.Logger
}

func NewPublisher(url, exchange, routingKey string, logger *applog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = applog.Discard()
	}
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p := &Publisher{
		conn:       conn,
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger.WithComponent(applog.ComponentEvents),
	}
	if err := p.channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		p.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, msg *StoreChanged) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.At,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	p.logger.Debug("published store change",
		applog.FieldExchange, p.exchange,
		applog.FieldRoutingKey, p.routingKey,
		applog.FieldGoal, msg.Goal,
		applog.FieldFoodCount, msg.FoodCount)
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
