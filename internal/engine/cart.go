package engine

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// ClearCart returns every reserved unit to its item's stock and empties
// the cart table.
func (e *Engine) ClearCart() {
	defer e.recoverInto(types.ErrorStorage, "Failed to clear cart")

	for id, qty := range e.cart {
		if item, ok := e.items[id]; ok {
			item.Stock += qty
			e.items[id] = item
		}
	}
	e.cart = make(map[string]int64)

	e.saveTables("Failed to save cart data",
		storage.KeyCartItems, storage.KeyItems)
}

// RemoveRequest is the payload for RemoveFromCart. Quantity defaults to 1
// when not positive.
type RemoveRequest struct {
	ProductID string
	Quantity  int64
}

// RemoveFromCart returns units of a product from the cart to stock. The
// cart quantity is floored at zero (the entry is deleted at zero), the
// purchased-items aggregate shrinks and is dropped at or below zero, and
// an item-removed notification is appended.
func (e *Engine) RemoveFromCart(req RemoveRequest) {
	defer e.recoverInto(types.ErrorStorage, "Failed to remove from cart")

	if req.ProductID == "" {
		e.errors.Purchase = "Product ID is required"
		return
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	if current, ok := e.cart[req.ProductID]; ok {
		if next := current - qty; next > 0 {
			e.cart[req.ProductID] = next
		} else {
			delete(e.cart, req.ProductID)
		}
	}

	var purchasedTitle string
	if idx := e.purchasedIndex(req.ProductID); idx >= 0 {
		e.purchased[idx].RemoveUnits(qty)
		purchasedTitle = e.purchased[idx].Title
		if e.purchased[idx].Depleted() {
			e.purchased = append(e.purchased[:idx], e.purchased[idx+1:]...)
		}
	}

	var stockNow int64
	title := "Unknown Product"
	if item, ok := e.items[req.ProductID]; ok {
		item.Stock += qty
		e.items[req.ProductID] = item
		stockNow = item.Stock
		title = item.Product.Title
	} else if purchasedTitle != "" {
		title = purchasedTitle
	}

	unit := "item"
	if qty > 1 {
		unit = "items"
	}
	e.notifications = append(e.notifications, types.Notification{
		ID:             newEventID(),
		Type:           types.NotificationItemRemoved,
		Title:          "Item removed from cart",
		Message:        fmt.Sprintf("Removed %d %s of %q from cart", qty, unit, title),
		Details:        fmt.Sprintf("Current stock: %d", stockNow),
		ProductID:      req.ProductID,
		ProductName:    title,
		StockRemaining: stockNow,
		Timestamp:      time.Now(),
	})

	e.saveTables("Failed to save cart data",
		storage.KeyCartItems, storage.KeyPurchased,
		storage.KeyItems, storage.KeyNotifications)
}
