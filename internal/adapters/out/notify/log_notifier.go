package notify

import (
	"context"
	"log/slog"

	"docdispatch/internal/core/ports"
)

// LogNotifier writes notifications to the structured log. Used when no broker
// is configured, so local and test environments still surface every event.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs instead of publishing.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs one notification at info level.
func (n *LogNotifier) Notify(_ context.Context, notification ports.Notification) error {
	n.logger.Info("notification",
		"event", notification.Event,
		"order_id", notification.OrderID.String(),
		"recipient_id", notification.RecipientID.String(),
		"message", notification.Message,
	)
	return nil
}
