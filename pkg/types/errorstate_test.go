package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStateSetGet(t *testing.T) {
	var e ErrorState

	e.Set(ErrorStorage, "disk full")
	e.Set(ErrorInventory, "bad data")
	e.Set(ErrorPurchase, "no stock")

	assert.Equal(t, "disk full", e.Get(ErrorStorage))
	assert.Equal(t, "bad data", e.Get(ErrorInventory))
	assert.Equal(t, "no stock", e.Get(ErrorPurchase))
	assert.True(t, e.Any())

	// Overwritten, not accumulated.
	e.Set(ErrorStorage, "quota exceeded")
	assert.Equal(t, "quota exceeded", e.Get(ErrorStorage))

	// Unknown categories are ignored.
	e.Set("network", "boom")
	assert.Equal(t, "", e.Get("network"))
}

func TestErrorStateClear(t *testing.T) {
	t.Run("clears one set slot", func(t *testing.T) {
		e := ErrorState{Storage: "a", Purchase: "b"}
		e.Clear(ErrorStorage)
		assert.Equal(t, "", e.Storage)
		assert.Equal(t, "b", e.Purchase)
	})

	t.Run("empty category resets all", func(t *testing.T) {
		e := ErrorState{Storage: "a", Inventory: "b", Purchase: "c"}
		e.Clear("")
		assert.False(t, e.Any())
	})

	t.Run("named but unset slot resets all", func(t *testing.T) {
		e := ErrorState{Storage: "a", Purchase: "b"}
		e.Clear(ErrorInventory)
		assert.False(t, e.Any())
	})
}
