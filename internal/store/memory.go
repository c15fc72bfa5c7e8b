package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrInjected is returned by Memory.Save when FailSaves is set.
var ErrInjected = errors.New("store: injected save failure")

// Memory is an in-process KV. Nothing survives the process; it exists for
// tests and dry runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// FailSaves makes every Save return ErrInjected.
	FailSaves bool
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Load implements KV.
func (m *Memory) Load(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Save implements KV.
func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return ErrInjected
	}
	m.data[key] = value
	return nil
}

// Keys implements Lister.
func (m *Memory) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
