package types

// Error categories. Each names one slot in ErrorState.
const (
	ErrorStorage   = "storage"
	ErrorInventory = "inventory"
	ErrorPurchase  = "purchase"
)

// ErrorState holds the most recent failure message per category, or the
// empty string when the category has no active error. Slots are overwritten
// on each new failure, never accumulated.
type ErrorState struct {
	Storage   string `json:"storage,omitempty"`
	Inventory string `json:"inventory,omitempty"`
	Purchase  string `json:"purchase,omitempty"`
}

// Get returns the message for the given category, or "" for an unknown
// category or a clear slot.
func (e ErrorState) Get(category string) string {
	switch category {
	case ErrorStorage:
		return e.Storage
	case ErrorInventory:
		return e.Inventory
	case ErrorPurchase:
		return e.Purchase
	}
	return ""
}

// Set records msg as the current error for the given category.
// Unknown categories are ignored.
func (e *ErrorState) Set(category, msg string) {
	switch category {
	case ErrorStorage:
		e.Storage = msg
	case ErrorInventory:
		e.Inventory = msg
	case ErrorPurchase:
		e.Purchase = msg
	}
}

// Clear clears the named slot when it is currently set; otherwise it resets
// all three slots. An empty category always resets all three.
func (e *ErrorState) Clear(category string) {
	if category != "" && e.Get(category) != "" {
		e.Set(category, "")
		return
	}
	*e = ErrorState{}
}

// Any reports whether any category has an active error.
func (e ErrorState) Any() bool {
	return e.Storage != "" || e.Inventory != "" || e.Purchase != ""
}
