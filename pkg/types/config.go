package types

import "errors"

// Config holds backend selection and parameters for opening a Store and
// reaching the catalog source.
type Config struct {
	Backend    string `json:"backend" yaml:"backend"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	CatalogURL string `json:"catalog_url" yaml:"catalog_url"`

	// QuotaBytes caps the total bytes stored across all values, modeling
	// the quota of the key-value backend. Zero means unlimited.
	QuotaBytes int64 `json:"quota_bytes" yaml:"quota_bytes"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrQuotaNegative  = errors.New("quota bytes must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
	BackendMemory: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.QuotaBytes < 0 {
		return ErrQuotaNegative
	}
	return nil
}
