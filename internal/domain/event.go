package domain

import "time"

// Order event kinds published after successful mutations.
const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
	EventOrderDeleted = "order_deleted"
)

// OrderEvent is the message emitted to the events topic. Deleted events
// carry no order body, only the id.
type OrderEvent struct {
	Event     string    `json:"event"`
	OrderID   int       `json:"orderId"`
	Order     *Order    `json:"order,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent stamps an event for an order mutation.
func NewOrderEvent(kind string, orderID int, order *Order) OrderEvent {
	return OrderEvent{
		Event:     kind,
		OrderID:   orderID,
		Order:     order,
		Timestamp: time.Now().UTC(),
	}
}
