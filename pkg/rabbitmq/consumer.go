package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "catalog"
	ExchangeKind = "topic"
	QueueName    = "event-catalog.sync"
)

// BindingKeys are the routing keys the sync queue receives.
var BindingKeys = []string{"event.*", "entry_type.*"}

type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewConsumer(url string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	c := &Consumer{conn: conn, channel: ch}
	if err := c.declare(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Consumer) declare() error {
	if err := c.channel.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	q, err := c.channel.QueueDeclare(QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	for _, key := range BindingKeys {
		if err := c.channel.QueueBind(q.Name, key, ExchangeName, false, nil); err != nil {
			return fmt.Errorf("rabbitmq queue bind %s: %w", key, err)
		}
	}

	// one unacked message at a time keeps upserts in publish order
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("rabbitmq qos: %w", err)
	}
	return nil
}

// Consume starts delivery with manual acks.
func (c *Consumer) Consume() (<-chan amqp.Delivery, error) {
	msgs, err := c.channel.Consume(
		QueueName,
		"",    // consumer tag
		false, // auto-ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq consume: %w", err)
	}
	return msgs, nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
