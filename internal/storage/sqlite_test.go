// Tests for the SQLite Store backend.
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, dir string, quota int64) *SQLite {
	t.Helper()
	s, err := OpenSQLite(dir, quota, nil)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_OpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	openTestStore(t, dir, 0)

	if _, err := os.Stat(filepath.Join(dir, dbFileName)); os.IsNotExist(err) {
		t.Error("stockroom.db not created")
	}
}

func TestSQLite_SetGetRoundTrip(t *testing.T) {
	s := openTestStore(t, t.TempDir(), 0)

	in := map[string]int64{"1": 3}
	if !s.SetItem(KeyCartItems, in) {
		t.Fatal("SetItem failed")
	}

	out := make(map[string]int64)
	if !s.GetItem(KeyCartItems, &out) {
		t.Fatal("GetItem failed")
	}
	if out["1"] != 3 {
		t.Errorf("round trip mismatch: %v", out)
	}

	// Overwrite replaces.
	if !s.SetItem(KeyCartItems, map[string]int64{"1": 9}) {
		t.Fatal("overwrite failed")
	}
	if !s.GetItem(KeyCartItems, &out) || out["1"] != 9 {
		t.Errorf("overwrite not visible: %v", out)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s := openTestStore(t, dir, 0)
	if !s.SetItem(KeyItems, map[string]string{"1": "snapshot"}) {
		t.Fatal("SetItem failed")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := openTestStore(t, dir, 0)
	out := make(map[string]string)
	if !reopened.GetItem(KeyItems, &out) || out["1"] != "snapshot" {
		t.Errorf("value lost across reopen: %v", out)
	}
}

func TestSQLite_CorruptionRepair(t *testing.T) {
	s := openTestStore(t, t.TempDir(), 0)
	s.SetItem(KeyItems, map[string]string{"1": "a"})

	s.mu.Lock()
	s.setRaw(KeyItems, "{definitely not json")
	s.mu.Unlock()

	out := make(map[string]string)
	if s.GetItem(KeyItems, &out) {
		t.Error("corrupted value should report false")
	}
	// The corrupted key is deleted.
	s.mu.Lock()
	_, present := s.getRaw(KeyItems)
	s.mu.Unlock()
	if present {
		t.Error("corrupted key should have been removed")
	}
}

func TestSQLite_RemoveItem(t *testing.T) {
	s := openTestStore(t, t.TempDir(), 0)
	s.SetItem("key", "value")

	if !s.RemoveItem("key") {
		t.Fatal("RemoveItem failed")
	}
	var out string
	if s.GetItem("key", &out) {
		t.Error("removed key should be absent")
	}
	// Removing an absent key still succeeds.
	if !s.RemoveItem("key") {
		t.Error("RemoveItem on absent key should succeed")
	}
}

func TestSQLite_ClearPreservesLocaleKeys(t *testing.T) {
	s := openTestStore(t, t.TempDir(), 0)
	s.SetItem(KeyItems, "data")
	s.SetItem("preferences_language", "fr")

	if !s.Clear() {
		t.Fatal("Clear failed")
	}

	var out string
	if s.GetItem(KeyItems, &out) {
		t.Error("inventory key should be gone")
	}
	if !s.GetItem("preferences_language", &out) || out != "fr" {
		t.Error("preferences_language should survive Clear")
	}
}

func TestSQLite_ClosedStoreFailsClosed(t *testing.T) {
	s := openTestStore(t, t.TempDir(), 0)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if s.SetItem("key", "value") {
		t.Error("SetItem on closed store should fail")
	}
	var out string
	if s.GetItem("key", &out) {
		t.Error("GetItem on closed store should fail")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close should be nil, got %v", err)
	}
}

func TestSQLite_QuotaTriggersLogTrim(t *testing.T) {
	dir := t.TempDir()
	unlimited := openTestStore(t, dir, 0)

	notifications := make([]string, 60)
	for i := range notifications {
		notifications[i] = "notification"
	}
	if !unlimited.SetItem(KeyNotifications, notifications) {
		t.Fatal("seed notifications failed")
	}
	if err := unlimited.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// 512 bytes holds the trimmed log plus a small write, but not the
	// original 60 entries.
	s := openTestStore(t, dir, 512)
	if !s.SetItem(KeyCartItems, map[string]int64{"1": 1}) {
		t.Fatal("write should succeed after log trim")
	}

	var got []string
	if !s.GetItem(KeyNotifications, &got) {
		t.Fatal("notifications missing after trim")
	}
	if len(got) != notificationTrimKeep {
		t.Errorf("notifications trimmed to %d, want %d", len(got), notificationTrimKeep)
	}
}
