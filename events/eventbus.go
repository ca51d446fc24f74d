package events

import (
	"sync"
	"time"
)

type Kind string

const (
	NetworkSelected  Kind = "network.selected"
	ThemeToggled     Kind = "theme.toggled"
	CopyAcknowledged Kind = "copy.acknowledged"
	CopyCleared      Kind = "copy.cleared"
)

// Event describes one view-state or copy-feedback transition. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind    Kind      `json:"kind"`
	Network string    `json:"network,omitempty"`
	Theme   string    `json:"theme,omitempty"`
	Text    string    `json:"text,omitempty"`
	Time    time.Time `json:"time"`
}

type EventBus struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe returns a buffered event channel and a function that removes the
// subscription and closes the channel. A nil bus yields a closed channel.
func (b *EventBus) Subscribe() (<-chan Event, func()) {
	if b == nil {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish fans ev out to all subscribers. Slow subscribers miss events
// rather than block the publisher.
func (b *EventBus) Publish(ev Event) {
	if b == nil {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		// non-blocking send
		select {
		case ch <- ev:
		default:
		}
	}
}
