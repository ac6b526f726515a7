package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasedItem aggregates all units of one product bought in the current
// session. Price is snapshotted at first purchase; TotalPrice is always
// Quantity * Price. The entry is removed entirely once Quantity decays to
// zero or below.
type PurchasedItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}

// NewPurchasedItem creates the aggregate for a product's first purchase.
func NewPurchasedItem(p Product) PurchasedItem {
	return PurchasedItem{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		Quantity:     1,
		TotalPrice:   p.Price,
		PurchaseDate: time.Now(),
	}
}

// AddUnits increases the quantity by n and recomputes the total.
func (p *PurchasedItem) AddUnits(n int64) {
	p.Quantity += n
	p.recalc()
}

// RemoveUnits decreases the quantity by n and recomputes the total.
// The quantity may go negative; callers drop depleted entries.
func (p *PurchasedItem) RemoveUnits(n int64) {
	p.Quantity -= n
	p.recalc()
}

// Depleted reports whether the aggregate should be dropped.
func (p *PurchasedItem) Depleted() bool {
	return p.Quantity <= 0
}

func (p *PurchasedItem) recalc() {
	p.TotalPrice = p.Price.Mul(decimal.NewFromInt(p.Quantity))
}

// PurchaseHistoryRecord is one entry in the append-only audit log of
// successful stock decrements. Records are never mutated; the log is only
// bulk-cleared by an explicit call.
type PurchaseHistoryRecord struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	ProductTitle string          `json:"productTitle"`
	Price        decimal.Decimal `json:"price"`
	PurchaseTime time.Time       `json:"purchaseTime"`
	StockBefore  int64           `json:"stockBefore"`
	StockAfter   int64           `json:"stockAfter"`
	CartQuantity int64           `json:"cartQuantity"`
	Message      string          `json:"message"`
}
