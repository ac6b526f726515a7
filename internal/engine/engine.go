// Package engine implements the inventory/cart state-transition engine:
// the single owner of product stock, cart quantities, purchase history,
// and notifications, with write-through persistence after every mutation.
//
// The engine is synchronous and single-owner: operations run to completion
// on the calling goroutine and the caller must not invoke it concurrently.
// Operations return nothing; failures are recorded in the error slots and
// effects are observed through the snapshot accessors.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Engine holds the five state tables and the error slots. All tables are
// exclusively owned; accessors hand out copies.
type Engine struct {
	store storage.Store
	log   *zap.SugaredLogger

	items         map[string]types.InventoryItem
	cart          map[string]int64
	purchased     []types.PurchasedItem
	notifications []types.Notification
	history       []types.PurchaseHistoryRecord
	errors        types.ErrorState
}

// New creates an engine bound to the given store, loading all five tables
// from it. Absent or corrupt entries fall back to empty containers.
func New(store storage.Store, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	e := &Engine{
		store: store,
		log:   log,
		items: make(map[string]types.InventoryItem),
		cart:  make(map[string]int64),
	}
	store.GetItem(storage.KeyItems, &e.items)
	store.GetItem(storage.KeyCartItems, &e.cart)
	store.GetItem(storage.KeyPurchased, &e.purchased)
	store.GetItem(storage.KeyNotifications, &e.notifications)
	store.GetItem(storage.KeyHistory, &e.history)
	return e
}

// Items returns a copy of the inventory table.
func (e *Engine) Items() map[string]types.InventoryItem {
	out := make(map[string]types.InventoryItem, len(e.items))
	for id, item := range e.items {
		out[id] = item
	}
	return out
}

// Cart returns a copy of the cart table.
func (e *Engine) Cart() map[string]int64 {
	out := make(map[string]int64, len(e.cart))
	for id, qty := range e.cart {
		out[id] = qty
	}
	return out
}

// PurchasedItems returns a copy of the purchased-items table.
func (e *Engine) PurchasedItems() []types.PurchasedItem {
	return append([]types.PurchasedItem(nil), e.purchased...)
}

// Notifications returns a copy of the notifications log.
func (e *Engine) Notifications() []types.Notification {
	return append([]types.Notification(nil), e.notifications...)
}

// PurchaseHistory returns a copy of the purchase-history log.
func (e *Engine) PurchaseHistory() []types.PurchaseHistoryRecord {
	return append([]types.PurchaseHistoryRecord(nil), e.history...)
}

// Errors returns the current error slots.
func (e *Engine) Errors() types.ErrorState {
	return e.errors
}

// ClearErrors clears the named error slot when set, otherwise all three.
func (e *Engine) ClearErrors(category string) {
	e.errors.Clear(category)
}

// saveTables writes the given table keys through the store and records the
// outcome: all writes succeeding clears the storage slot, any failure sets
// it to failMsg. In-memory state is never rolled back on a failed write.
func (e *Engine) saveTables(failMsg string, keys ...string) {
	ok := true
	for _, key := range keys {
		switch key {
		case storage.KeyItems:
			ok = e.store.SetItem(key, e.items) && ok
		case storage.KeyCartItems:
			ok = e.store.SetItem(key, e.cart) && ok
		case storage.KeyPurchased:
			ok = e.store.SetItem(key, e.purchased) && ok
		case storage.KeyNotifications:
			ok = e.store.SetItem(key, e.notifications) && ok
		case storage.KeyHistory:
			ok = e.store.SetItem(key, e.history) && ok
		}
	}
	if ok {
		e.errors.Storage = ""
	} else {
		e.errors.Storage = failMsg
	}
}

// recoverInto converts a panic inside an operation into the given error
// slot. The engine never propagates faults to the host.
func (e *Engine) recoverInto(category, prefix string) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf("%s: %v", prefix, r)
		e.errors.Set(category, msg)
		e.log.Errorw("operation fault", "category", category, "error", msg)
	}
}

// recoverLog swallows a panic inside a housekeeping operation, logging it
// without touching the error slots.
func (e *Engine) recoverLog(op string) {
	if r := recover(); r != nil {
		e.log.Errorw("operation fault", "op", op, "error", r)
	}
}

// newEventID generates a timestamp-ordered ID for notifications and
// history records.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// purchasedIndex returns the index of the purchased-items entry for the
// product, or -1.
func (e *Engine) purchasedIndex(productID string) int {
	for i := range e.purchased {
		if e.purchased[i].ID == productID {
			return i
		}
	}
	return -1
}
