package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, cfg.Backend)
	assert.Equal(t, defaultCatalogURL, cfg.CatalogURL)

	_, err = os.Stat(filepath.Join(dir, configFileExt))
	assert.NoError(t, err, "default config.yaml should be written")
}

func TestLoadConfigReadsValues(t *testing.T) {
	dir := t.TempDir()
	content := "backend: memory\nquota_bytes: 2048\ncatalog_url: http://localhost:9999\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	cfg, err := loadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, types.BackendMemory, cfg.Backend)
	assert.Equal(t, int64(2048), cfg.QuotaBytes)
	assert.Equal(t, "http://localhost:9999", cfg.CatalogURL)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt),
		[]byte("backend: redis\n"), 0o644))

	_, err := loadConfig(dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
