// End-to-end tests for the stockroom CLI over the SQLite backend.
package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), "command %v", args)
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	assert.Contains(t, out, "stockroom v")
}

func TestPurchaseWorkflow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[
			{"id":1,"title":"Backpack","price":10,"category":"bags"},
			{"id":2,"title":"Monitor","price":130,"category":"electronics"}
		]`))
	}))
	t.Cleanup(server.Close)

	configDir := t.TempDir()
	dataDir := t.TempDir()
	content := "backend: sqlite\ncatalog_url: " + server.URL + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt),
		[]byte(content), 0o644))
	base := []string{"--config-dir", configDir, "--data-dir", dataDir}

	out := runCommand(t, append(base, "sync")...)
	assert.Contains(t, out, "Registered 2 catalog products")

	out = runCommand(t, append(base, "buy", "1", "--count", "2")...)
	assert.Contains(t, out, "in cart 2")

	// Effective stock reflects the cart reservation.
	out = runCommand(t, append(base, "products")...)
	assert.Contains(t, out, "stock=16")
	assert.Contains(t, out, "Monitor")

	out = runCommand(t, append(base, "cart")...)
	assert.Contains(t, out, "Backpack")

	out = runCommand(t, append(base, "history")...)
	assert.Contains(t, out, "Purchased Backpack")

	out = runCommand(t, append(base, "notifications")...)
	assert.Contains(t, out, "purchase_success")

	out = runCommand(t, append(base, "cart", "clear")...)
	assert.Contains(t, out, "Cart cleared")

	out = runCommand(t, append(base, "products")...)
	assert.Contains(t, out, "stock=20")
}

func TestBuyUnknownProductFails(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt),
		[]byte("backend: sqlite\n"), 0o644))

	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--config-dir", configDir, "--data-dir", dataDir, "buy", "404"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product 404 not found in inventory")

	// An operation failure is a user error, not an environment one.
	var sys systemError
	assert.False(t, errors.As(err, &sys))
}

func TestAttachFailureIsSystemError(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt),
		[]byte("backend: redis\n"), 0o644))

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config-dir", configDir, "--data-dir", t.TempDir(), "products"})

	err := root.Execute()
	require.Error(t, err)

	var sys systemError
	assert.True(t, errors.As(err, &sys), "attach failures carry the system marker")
}
