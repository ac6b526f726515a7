package engine

import (
	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// MarkNotificationRead marks the notification with the given ID as read.
// Unknown IDs are ignored.
func (e *Engine) MarkNotificationRead(id string) {
	defer e.recoverLog("mark notification read")

	for i := range e.notifications {
		if e.notifications[i].ID == id {
			e.notifications[i].MarkRead()
			e.store.SetItem(storage.KeyNotifications, e.notifications)
			return
		}
	}
}

// MarkAllNotificationsRead marks every notification as read.
func (e *Engine) MarkAllNotificationsRead() {
	defer e.recoverLog("mark all notifications read")

	for i := range e.notifications {
		e.notifications[i].MarkRead()
	}
	e.store.SetItem(storage.KeyNotifications, e.notifications)
}

// RemoveNotification deletes the notification with the given ID.
func (e *Engine) RemoveNotification(id string) {
	defer e.recoverLog("remove notification")

	kept := e.notifications[:0]
	for _, n := range e.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	e.notifications = kept
	e.store.SetItem(storage.KeyNotifications, e.notifications)
}

// ClearNotifications empties the notifications log.
func (e *Engine) ClearNotifications() {
	defer e.recoverLog("clear notifications")

	e.notifications = []types.Notification{}
	e.store.SetItem(storage.KeyNotifications, e.notifications)
}

// ClearPurchaseHistory empties the purchase-history log.
func (e *Engine) ClearPurchaseHistory() {
	defer e.recoverLog("clear purchase history")

	e.history = []types.PurchaseHistoryRecord{}
	e.store.SetItem(storage.KeyHistory, e.history)
}
