package entities

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// Notification is emitted on payment events. Delivery is up to the sink.
type Notification struct {
	Recipient string           `json:"recipient"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	PaymentID string           `json:"payment_id"`
	CreatedAt time.Time        `json:"created_at"`
}
