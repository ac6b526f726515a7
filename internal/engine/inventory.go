package engine

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// RegisterProducts supplements the inventory with catalog records. A record
// with a new ID is inserted with the default stock and the record kept as
// the product snapshot; an already-known ID is ignored (first write wins).
// Records without an ID are skipped with a warning. A nil slice sets the
// inventory error slot and changes nothing.
func (e *Engine) RegisterProducts(records []types.Product) {
	defer e.recoverInto(types.ErrorInventory, "Failed to set inventory")

	if records == nil {
		e.errors.Inventory = "Invalid products data: expected array"
		return
	}

	for _, p := range records {
		if p.ID == "" {
			e.log.Warnw("product missing ID", "title", p.Title)
			continue
		}
		if _, ok := e.items[p.ID]; ok {
			continue
		}
		e.items[p.ID] = types.InventoryItem{Stock: types.DefaultStock, Product: p}
	}

	e.saveTables("Failed to save inventory to storage", storage.KeyItems)
	e.errors.Inventory = ""
}

// RestockRequest is the payload for Restock. A nil Quantity means the
// default stock level.
type RestockRequest struct {
	ProductID string
	Quantity  *int64
}

// Restock sets the product's stock to exactly the requested quantity.
// The set is absolute, not additive. Validation failures are recorded in
// the inventory error slot and leave stock unchanged.
func (e *Engine) Restock(req RestockRequest) {
	defer e.recoverInto(types.ErrorInventory, "Failed to restock")

	if req.ProductID == "" {
		e.errors.Inventory = "Product ID is required for restocking"
		return
	}
	item, ok := e.items[req.ProductID]
	if !ok {
		e.errors.Inventory = fmt.Sprintf("Product %s not found in inventory", req.ProductID)
		return
	}
	quantity := types.DefaultStock
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 0 {
		e.errors.Inventory = "Invalid quantity for restocking"
		return
	}

	previous := item.Stock
	item.Stock = quantity
	e.items[req.ProductID] = item

	e.notifications = append(e.notifications, types.Notification{
		ID:             newEventID(),
		Type:           types.NotificationRestock,
		Title:          "Restocked",
		Message:        fmt.Sprintf("Restocked %q", item.Product.Title),
		Details:        fmt.Sprintf("From %d to %d items", previous, quantity),
		ProductID:      req.ProductID,
		ProductName:    item.Product.Title,
		StockRemaining: quantity,
		Timestamp:      time.Now(),
	})

	e.saveTables("Failed to save restock data",
		storage.KeyItems, storage.KeyNotifications)
	e.errors.Inventory = ""
}
