// Package storage implements the persistence adapter for the inventory
// engine: durable string-keyed storage of JSON-structured values that
// fails closed (reports failure) instead of raising, and auto-repairs
// corrupted entries by deleting them.
package storage

import "encoding/json"

// Storage keys for the engine's five state tables.
const (
	KeyItems         = "inventory_items"
	KeyCartItems     = "inventory_cart_items"
	KeyPurchased     = "inventory_purchased_items"
	KeyNotifications = "inventory_notifications"
	KeyHistory       = "inventory_purchase_history"
)

// Locale-preference keys preserved by Clear.
var preservedKeys = map[string]bool{
	"preferences_language": true,
	"preferences_locale":   true,
}

// Store is the persistence adapter contract. All operations report success
// as a boolean and never panic; an unavailable or over-quota backend
// degrades to failed writes.
type Store interface {
	// SetItem serializes value under key. Returns false on an empty key,
	// a nil value, serialization failure, or backend failure. On quota
	// exhaustion the store truncates oversized notification and history
	// logs and retries once.
	SetItem(key string, value any) bool

	// GetItem deserializes the value under key into out. Returns false
	// when the key is absent. Corrupted data is logged, deleted, and
	// reported as absent.
	GetItem(key string, out any) bool

	// RemoveItem deletes the value under key.
	RemoveItem(key string) bool

	// Clear removes every key except the locale-preference allow-list.
	Clear() bool

	// Close releases backend resources. Idempotent.
	Close() error
}

// Retention limits applied when a write hits the backend quota.
const (
	notificationTrimAbove = 50
	notificationTrimKeep  = 25
	historyTrimAbove      = 100
	historyTrimKeep       = 50
)

// rawStore is the minimal surface the quota cleanup needs. Backends expose
// their unchecked get/set so cleanup writes cannot recurse into the quota
// path.
type rawStore interface {
	getRaw(key string) (string, bool)
	setRaw(key, value string) bool
}

// trimLogsForSpace truncates the append-only logs to their retention
// limits, freeing space before a single write retry.
func trimLogsForSpace(s rawStore) {
	trimLog(s, KeyNotifications, notificationTrimAbove, notificationTrimKeep)
	trimLog(s, KeyHistory, historyTrimAbove, historyTrimKeep)
}

// trimLog keeps the newest entries of the JSON array stored under key when
// it has grown past max. Unreadable values are left alone; GetItem repairs
// those.
func trimLog(s rawStore, key string, max, keep int) {
	raw, ok := s.getRaw(key)
	if !ok {
		return
	}
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return
	}
	if len(entries) <= max {
		return
	}
	trimmed, err := json.Marshal(entries[len(entries)-keep:])
	if err != nil {
		return
	}
	s.setRaw(key, string(trimmed))
}
