// Package notify provides Notifier implementations. Notifications are
// fire-and-forget: delivery to owners and delegates is best effort and never
// blocks or fails the business operation that produced the event.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"docdispatch/internal/core/ports"

	"github.com/streadway/amqp"
)

// AmqpNotifier publishes notifications to a RabbitMQ queue, one durable queue
// for all lifecycle events; consumers fan out to SMS, email, or push.
type AmqpNotifier struct {
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// notificationMessage is the wire format for a published notification.
type notificationMessage struct {
	Event       string `json:"event"`
	OrderID     string `json:"order_id"`
	RecipientID string `json:"recipient_id"`
	Message     string `json:"message"`
}

// NewAmqpNotifier creates a notifier publishing to the named queue,
// declaring it durable so notifications survive broker restarts.
func NewAmqpNotifier(conn *amqp.Connection, queue string, logger *slog.Logger) (*AmqpNotifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		closeErr := channel.Close()
		if closeErr != nil {
			logger.Error("failed to close channel after declare failure", "error", closeErr)
		}
		return nil, err
	}

	return &AmqpNotifier{
		channel: channel,
		queue:   queue,
		logger:  logger,
	}, nil
}

// Notify publishes one notification to the queue.
func (n *AmqpNotifier) Notify(_ context.Context, notification ports.Notification) error {
	body, err := json.Marshal(notificationMessage{
		Event:       string(notification.Event),
		OrderID:     notification.OrderID.String(),
		RecipientID: notification.RecipientID.String(),
		Message:     notification.Message,
	})
	if err != nil {
		return err
	}

	return n.channel.Publish(
		"",
		n.queue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Close releases the AMQP channel for graceful shutdown.
func (n *AmqpNotifier) Close() error {
	return n.channel.Close()
}
