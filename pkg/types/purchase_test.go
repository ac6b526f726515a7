package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewPurchasedItem(t *testing.T) {
	p := Product{ID: "1", Title: "A", Price: decimal.NewFromInt(10)}

	item := NewPurchasedItem(p)

	assert.Equal(t, "1", item.ID)
	assert.Equal(t, "A", item.Title)
	assert.Equal(t, int64(1), item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(10)))
	assert.False(t, item.PurchaseDate.IsZero())
}

func TestPurchasedItemUnits(t *testing.T) {
	p := Product{ID: "1", Title: "A", Price: decimal.NewFromFloat(2.5)}
	item := NewPurchasedItem(p)

	item.AddUnits(3)
	assert.Equal(t, int64(4), item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(10)),
		"total should be quantity * snapshotted price")
	assert.False(t, item.Depleted())

	item.RemoveUnits(4)
	assert.Equal(t, int64(0), item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.Zero))
	assert.True(t, item.Depleted())

	// Quantity may go negative; the engine drops depleted entries.
	item.RemoveUnits(1)
	assert.True(t, item.Depleted())
}
