package types

import "github.com/shopspring/decimal"

// Product is a catalog record as delivered by the external catalog source.
// The engine treats products as opaque snapshots: once a product is stored
// against an inventory item, later sightings of the same ID never overwrite
// it (first write wins).
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Image       string          `json:"image,omitempty"`

	// Stock is an optional catalog-side hint used only by the derivation
	// layer when the engine has no inventory entry for the product.
	// Zero or negative means unset.
	Stock int64 `json:"stock,omitempty"`
}
