package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// seedNotifications produces an engine with a few notifications to edit.
func seedNotifications(t *testing.T) (*Engine, *storage.Memory) {
	t.Helper()
	e, store := newTestEngine(t)
	e.RegisterProducts([]types.Product{product("1", "A", 10)})
	e.DecrementStock("1")
	e.DecrementStock("1")
	require.Len(t, e.Notifications(), 2)
	return e, store
}

func TestMarkNotificationRead(t *testing.T) {
	e, _ := seedNotifications(t)
	target := e.Notifications()[0]

	e.MarkNotificationRead(target.ID)

	notifications := e.Notifications()
	assert.True(t, notifications[0].Read)
	assert.False(t, notifications[1].Read)

	// Unknown IDs are ignored.
	e.MarkNotificationRead("nope")
	assert.Len(t, e.Notifications(), 2)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	e, _ := seedNotifications(t)

	e.MarkAllNotificationsRead()

	for _, n := range e.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestRemoveNotification(t *testing.T) {
	e, _ := seedNotifications(t)
	target := e.Notifications()[0]

	e.RemoveNotification(target.ID)

	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.NotEqual(t, target.ID, notifications[0].ID)
}

func TestClearNotifications(t *testing.T) {
	e, store := seedNotifications(t)

	e.ClearNotifications()

	assert.Empty(t, e.Notifications())

	// The cleared log is persisted, not just dropped in memory.
	var persisted []types.Notification
	require.True(t, store.GetItem(storage.KeyNotifications, &persisted))
	assert.Empty(t, persisted)
}

func TestClearPurchaseHistory(t *testing.T) {
	e, store := seedNotifications(t)
	require.Len(t, e.PurchaseHistory(), 2)

	e.ClearPurchaseHistory()

	assert.Empty(t, e.PurchaseHistory())

	var persisted []types.PurchaseHistoryRecord
	require.True(t, store.GetItem(storage.KeyHistory, &persisted))
	assert.Empty(t, persisted)
}

func TestHousekeepingPersistsNotifications(t *testing.T) {
	e, store := seedNotifications(t)
	target := e.Notifications()[0]

	e.MarkNotificationRead(target.ID)

	var persisted []types.Notification
	require.True(t, store.GetItem(storage.KeyNotifications, &persisted))
	require.Len(t, persisted, 2)
	assert.True(t, persisted[0].Read)
}
