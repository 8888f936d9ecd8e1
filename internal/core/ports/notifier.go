package ports

import (
	"context"

	"docdispatch/internal/core/domain/model/kernel"
)

// NotificationEvent identifies what happened to an order.
type NotificationEvent string

// Notification events emitted by the lifecycle handlers.
const (
	// EventOrderConfirmed tells the owner their payment was confirmed and the
	// order exists.
	EventOrderConfirmed NotificationEvent = "order_confirmed"

	// EventDelegateAssigned tells the delegate a new order landed on them.
	EventDelegateAssigned NotificationEvent = "delegate_assigned"

	// EventDocumentReady tells the owner the document is procured and about
	// to be shipped.
	EventDocumentReady NotificationEvent = "document_ready"

	// EventDocumentShipped tells the owner the document left with a carrier.
	EventDocumentShipped NotificationEvent = "document_shipped"

	// EventDispatchFailed tells operators no delegate covers the order's
	// territory and manual assignment is needed.
	EventDispatchFailed NotificationEvent = "dispatch_failed"
)

// Notification is one outbound message about an order.
type Notification struct {
	Event       NotificationEvent
	OrderID     kernel.UUID
	RecipientID kernel.UUID
	Message     string
}

// Notifier delivers lifecycle notifications. Delivery is fire-and-forget from
// the caller's point of view: handlers log a failed Notify and move on, a lost
// notification never fails or rolls back the underlying transition.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
