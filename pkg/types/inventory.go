package types

// DefaultStock is the stock level assigned to a product on first sighting
// and the restock quantity used when none is given.
const DefaultStock int64 = 20

// LowStockThreshold is the stock level at or below which a decrement
// triggers a low-stock notification (exclusive of zero, which is out of
// stock instead).
const LowStockThreshold int64 = 5

// InventoryItem tracks the engine's own bookkeeping for one product.
// Stock never goes negative. Items are supplemented, never deleted.
type InventoryItem struct {
	Stock   int64   `json:"stock"`
	Product Product `json:"product"`
}

// OutOfStock reports whether the item has no sellable units left.
func (i InventoryItem) OutOfStock() bool {
	return i.Stock <= 0
}
