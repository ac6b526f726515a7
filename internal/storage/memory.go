package storage

import (
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Memory is a map-backed Store for tests and ephemeral runs. It honors the
// same quota and corruption-repair contract as the SQLite backend and can
// be switched into a failing mode to exercise storage error paths.
type Memory struct {
	mu         sync.Mutex
	data       map[string]string
	quota      int64
	failWrites bool
	log        *zap.SugaredLogger
}

// NewMemory creates an empty in-memory store with no quota.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]string),
		log:  zap.NewNop().Sugar(),
	}
}

// SetQuota caps total stored bytes. Zero means unlimited.
func (m *Memory) SetQuota(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = n
}

// FailWrites makes every subsequent SetItem report failure.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// Corrupt overwrites the value under key with text that does not parse,
// for exercising the repair path.
func (m *Memory) Corrupt(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = "{not json"
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// SetItem implements Store.
func (m *Memory) SetItem(key string, value any) bool {
	if strings.TrimSpace(key) == "" {
		return false
	}
	if value == nil {
		return false
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites {
		return false
	}
	if m.overQuotaLocked(key, int64(len(serialized))) {
		trimLogsForSpace(m)
		if m.overQuotaLocked(key, int64(len(serialized))) {
			return false
		}
	}
	m.data[key] = string(serialized)
	return true
}

// GetItem implements Store.
func (m *Memory) GetItem(key string, out any) bool {
	if strings.TrimSpace(key) == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		m.log.Warnw("corrupted value, removing", "key", key, "error", err)
		delete(m.data, key)
		return false
	}
	return true
}

// RemoveItem implements Store.
func (m *Memory) RemoveItem(key string) bool {
	if strings.TrimSpace(key) == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return true
}

// Clear implements Store. The locale-preference keys survive.
func (m *Memory) Clear() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.data {
		if !preservedKeys[key] {
			delete(m.data, key)
		}
	}
	return true
}

// Close implements Store. No resources to release.
func (m *Memory) Close() error {
	return nil
}

// overQuotaLocked reports whether writing size bytes under key would push
// total stored bytes past the quota. Caller must hold m.mu.
func (m *Memory) overQuotaLocked(key string, size int64) bool {
	if m.quota <= 0 {
		return false
	}
	var used int64
	for k, v := range m.data {
		if k == key {
			continue
		}
		used += int64(len(v))
	}
	return used+size > m.quota
}

// getRaw implements rawStore. Caller must hold m.mu.
func (m *Memory) getRaw(key string) (string, bool) {
	raw, ok := m.data[key]
	return raw, ok
}

// setRaw implements rawStore. Caller must hold m.mu.
func (m *Memory) setRaw(key, value string) bool {
	m.data[key] = value
	return true
}
