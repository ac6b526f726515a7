package types

import "time"

// Notification types. Every mutating engine operation appends
// notifications unconditionally; there is no deduplication.
const (
	NotificationPurchaseSuccess = "purchase_success"
	NotificationOutOfStock      = "out_of_stock"
	NotificationLowStock        = "low_stock"
	NotificationRestock         = "restock"
	NotificationItemRemoved     = "item_removed"
)

// validNotificationTypes is the set of recognized notification type values.
var validNotificationTypes = map[string]bool{
	NotificationPurchaseSuccess: true,
	NotificationOutOfStock:      true,
	NotificationLowStock:        true,
	NotificationRestock:         true,
	NotificationItemRemoved:     true,
}

// ValidNotificationType reports whether t is a recognized notification type.
func ValidNotificationType(t string) bool {
	return validNotificationTypes[t]
}

// Notification is an append-only user-facing event record.
type Notification struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Details        string    `json:"details,omitempty"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName,omitempty"`
	StockRemaining int64     `json:"stockRemaining"`
	CartQuantity   int64     `json:"cartQuantity,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

// MarkRead marks the notification as read. Idempotent.
func (n *Notification) MarkRead() {
	n.Read = true
}
