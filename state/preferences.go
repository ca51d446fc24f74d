package state

import "sync"

// ThemeKey is the preference key the active theme is stored under.
const ThemeKey = "theme"

// Preferences is the durable user preference store.
type Preferences interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Close() error
}

// MemoryPreferences keeps preferences for the lifetime of the process.
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (m *MemoryPreferences) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryPreferences) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many Put calls the store has seen.
func (m *MemoryPreferences) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *MemoryPreferences) Close() error { return nil }
