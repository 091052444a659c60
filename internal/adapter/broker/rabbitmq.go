package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"order-up/internal/config"
	"order-up/internal/domain/models"
	"order-up/pkg/logger"
)

const (
	ordersExchange  = "orders_topic"
	orderCreatedKey = "order.created"
)

// Publisher fans accepted orders out to RabbitMQ so kitchen displays and
// notification consumers can react without polling the orders collection.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mylog   logger.Logger
}

func New(cfg config.RabbitMQ, mylog logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ordersExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	mylog.Action("mb_exchange_declared").Info("Declared orders exchange", "exchange", ordersExchange)
	return &Publisher{conn: conn, channel: channel, mylog: mylog}, nil
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, order models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		ordersExchange,  // exchange
		orderCreatedKey, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		})
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
