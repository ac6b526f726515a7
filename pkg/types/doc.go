// Package types defines the entity types, error-state model, and
// configuration for the Stockroom inventory system.
package types
