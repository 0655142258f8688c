package mailqueue

import (
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/streadway/amqp"

	"portfolio/internal/mailer"
)

const queueName = "mail_queue"

// Client holds the RabbitMQ connection and channel for the outbound mail
// queue. It is optional: when no queue URL is configured the application
// sends mail synchronously instead.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ and declares the durable mail queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable (persists messages across broker restarts)
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", queueName, err)
	}

	log.Printf("mail queue client connected, %s declared", queueName)

	return &Client{conn: conn, channel: ch}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing mail queue client: %v", errs)
	}
	return nil
}

// Publish enqueues one mail message as a persistent JSON job.
func (c *Client) Publish(msg mailer.Message) error {
	if c.channel == nil {
		return fmt.Errorf("mail queue channel is not available")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal mail message: %w", err)
	}

	err = c.channel.Publish(
		"",        // exchange: default exchange
		queueName, // routing key: the queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		})
	if err != nil {
		return fmt.Errorf("failed to publish mail message: %w", err)
	}
	return nil
}

// Consume drains the mail queue, delivering each job through send. Failed
// sends are nacked back onto the queue.
func (c *Client) Consume(send func(mailer.Message) error) error {
	if c.channel == nil {
		return fmt.Errorf("mail queue channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack: manual acknowledgement below
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register mail consumer: %w", err)
	}

	go func() {
		for d := range msgs {
			var msg mailer.Message
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				log.Printf("dropping malformed mail job %d: %v", d.DeliveryTag, err)
				if nackErr := d.Nack(false, false); nackErr != nil {
					log.Printf("error nacking mail job %d: %v", d.DeliveryTag, nackErr)
				}
				continue
			}
			if err := send(msg); err != nil {
				log.Printf("mail job %d failed, requeueing: %v", d.DeliveryTag, err)
				if nackErr := d.Nack(false, true); nackErr != nil {
					log.Printf("error nacking mail job %d: %v", d.DeliveryTag, nackErr)
				}
				continue
			}
			if ackErr := d.Ack(false); ackErr != nil {
				log.Printf("error acking mail job %d: %v", d.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}

// QueueMailer adapts Client to the mailer.Mailer interface: Send enqueues
// the message and delivery happens in the consumer.
type QueueMailer struct {
	client *Client
}

// NewQueueMailer creates a Mailer backed by the queue client.
func NewQueueMailer(client *Client) *QueueMailer {
	return &QueueMailer{client: client}
}

// Send enqueues the message.
func (m *QueueMailer) Send(msg mailer.Message) error {
	return m.client.Publish(msg)
}
