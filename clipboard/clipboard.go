package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Clipboard is the system clipboard. Only writes are needed.
type Clipboard interface {
	Write(text string) error
}

// MemoryClipboard records writes in memory. Err, when set, is returned from
// every Write.
type MemoryClipboard struct {
	mu     sync.Mutex
	last   string
	writes int
	Err    error
}

func (m *MemoryClipboard) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.Err != nil {
		return m.Err
	}
	m.last = text
	return nil
}

func (m *MemoryClipboard) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *MemoryClipboard) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("could not write system clipboard: %w", err)
	}
	return nil
}

// Detect returns the system clipboard when the host has one.
func Detect() (Clipboard, bool) {
	if sysclip.Unsupported {
		return nil, false
	}
	return SystemClipboard{}, true
}
