package engine

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// DecrementStock reserves one unit of the product: stock goes down by one,
// the cart quantity goes up by one, the purchased-items aggregate is
// upserted, and one history record plus one purchase notification are
// appended. A decrement that lands on zero stock appends an out-of-stock
// notification; one that lands in (0, LowStockThreshold] appends a
// low-stock notification. Never both.
//
// Guard failures record a message in the purchase error slot and mutate
// nothing: an empty ID, an unknown product, or a depleted product.
func (e *Engine) DecrementStock(productID string) {
	defer e.recoverInto(types.ErrorPurchase, "Failed to process purchase")

	if productID == "" {
		e.errors.Purchase = "Product ID is required"
		return
	}
	item, ok := e.items[productID]
	if !ok {
		e.errors.Purchase = fmt.Sprintf("Product %s not found in inventory", productID)
		return
	}
	if item.Stock <= 0 {
		e.errors.Purchase = fmt.Sprintf("Product %s is out of stock", productID)
		return
	}

	product := item.Product
	previous := item.Stock
	item.Stock--
	e.items[productID] = item
	newStock := item.Stock

	e.cart[productID]++
	cartQty := e.cart[productID]

	if idx := e.purchasedIndex(productID); idx >= 0 {
		e.purchased[idx].AddUnits(1)
	} else {
		e.purchased = append(e.purchased, types.NewPurchasedItem(product))
	}

	e.history = append(e.history, types.PurchaseHistoryRecord{
		ID:           newEventID(),
		ProductID:    productID,
		ProductTitle: product.Title,
		Price:        product.Price,
		PurchaseTime: time.Now(),
		StockBefore:  previous,
		StockAfter:   newStock,
		CartQuantity: cartQty,
		Message: fmt.Sprintf("Purchased %s - remaining stock: %d items",
			product.Title, newStock),
	})

	e.notifications = append(e.notifications, types.Notification{
		ID:      newEventID(),
		Type:    types.NotificationPurchaseSuccess,
		Title:   "Purchase successful",
		Message: fmt.Sprintf("Successfully purchased %q", product.Title),
		Details: fmt.Sprintf("Price: %s | Remaining stock: %d | In cart: %d",
			product.Price, newStock, cartQty),
		ProductID:      productID,
		ProductName:    product.Title,
		StockRemaining: newStock,
		CartQuantity:   cartQty,
		Timestamp:      time.Now(),
	})

	// Exactly one of the two stock-status notifications per call.
	switch {
	case newStock == 0:
		e.notifications = append(e.notifications, types.Notification{
			ID:          newEventID(),
			Type:        types.NotificationOutOfStock,
			Title:       "Out of stock",
			Message:     fmt.Sprintf("%q is no longer available", product.Title),
			Details:     "Please restock inventory",
			ProductID:   productID,
			ProductName: product.Title,
			Timestamp:   time.Now(),
		})
	case newStock <= types.LowStockThreshold:
		e.notifications = append(e.notifications, types.Notification{
			ID:             newEventID(),
			Type:           types.NotificationLowStock,
			Title:          "Low stock warning",
			Message:        fmt.Sprintf("%q needs restocking", product.Title),
			Details:        fmt.Sprintf("Remaining: %d items only", newStock),
			ProductID:      productID,
			ProductName:    product.Title,
			StockRemaining: newStock,
			Timestamp:      time.Now(),
		})
	}

	e.saveTables("Failed to save purchase data",
		storage.KeyItems, storage.KeyCartItems, storage.KeyPurchased,
		storage.KeyNotifications, storage.KeyHistory)
	e.errors.Purchase = ""
}
