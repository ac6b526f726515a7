// Package view derives view-ready product records from raw catalog data
// and engine state. Everything here is a pure function over its inputs:
// no side effects, safe to call repeatedly, never panics outward.
package view

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Stock status values.
const (
	StatusOut  = "out"
	StatusLow  = "low"
	StatusGood = "good"
)

// lowStatusBelow is the effective-stock bound below which status is "low".
// Note this is strictly-below, unlike the engine's at-or-below
// notification threshold.
const lowStatusBelow int64 = 5

// Product is a catalog record merged with engine state for rendering.
type Product struct {
	types.Product

	EffectiveStock int64  `json:"stock"`
	ItemCount      int64  `json:"itemCount"`
	IsOutOfStock   bool   `json:"isOutOfStock"`
	StockStatus    string `json:"stockStatus"`
	HasError       bool   `json:"hasError,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
}

// Products merges catalog records with inventory, cart, and per-product
// purchase errors. Effective stock is the engine's stock (or the catalog
// hint, or the default) minus the cart reservation, floored at zero.
// Products without an ID are dropped. On an internal fault the failure is
// logged and an empty slice returned.
func Products(catalog []types.Product, items map[string]types.InventoryItem,
	cart map[string]int64, purchaseErrors map[string]string,
	log *zap.SugaredLogger) (out []Product) {

	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.Errorw("derive products", "error", r)
			}
			out = nil
		}
	}()

	if len(catalog) == 0 {
		return nil
	}

	out = make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if p.ID == "" {
			continue
		}

		base := types.DefaultStock
		if item, ok := items[p.ID]; ok {
			base = item.Stock
		} else if p.Stock > 0 {
			base = p.Stock
		}

		reserved := cart[p.ID]
		stock := base - reserved
		if stock < 0 {
			stock = 0
		}

		errMsg := purchaseErrors[p.ID]
		out = append(out, Product{
			Product:        p,
			EffectiveStock: stock,
			ItemCount:      reserved,
			IsOutOfStock:   stock == 0,
			StockStatus:    statusFor(stock),
			HasError:       errMsg != "",
			ErrorMessage:   errMsg,
		})
	}
	return out
}

// DashboardProducts merges catalog records with raw engine stock, without
// subtracting cart reservations. Used by the dashboard listing.
func DashboardProducts(catalog []types.Product,
	items map[string]types.InventoryItem, cart map[string]int64) []Product {

	if len(catalog) == 0 {
		return nil
	}

	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if p.ID == "" {
			continue
		}

		stock := types.DefaultStock
		if item, ok := items[p.ID]; ok {
			stock = item.Stock
		}

		out = append(out, Product{
			Product:        p,
			EffectiveStock: stock,
			ItemCount:      cart[p.ID],
			IsOutOfStock:   stock == 0,
			StockStatus:    statusFor(stock),
		})
	}
	return out
}

// Paginate returns the page-th slice (1-based) of perPage products.
// Out-of-range pages return an empty slice.
func Paginate(products []Product, page, perPage int) []Product {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(products) {
		return nil
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func statusFor(stock int64) string {
	switch {
	case stock == 0:
		return StatusOut
	case stock < lowStatusBelow:
		return StatusLow
	default:
		return StatusGood
	}
}
