package clipboard

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Integra-layer/chain-id-card/events"
)

// DefaultAckWindow is how long a copy stays acknowledged.
const DefaultAckWindow = 2000 * time.Millisecond

const (
	LabelIdle         = "Copy"
	LabelAcknowledged = "Copied!"
)

// Copier is the copy affordance of a single button: idle until Copy, then
// acknowledged for one window, then idle again. Copying again while
// acknowledged restarts the window.
type Copier struct {
	mu     sync.Mutex
	writer *writer
	window time.Duration
	bus    *events.EventBus

	acked bool
	text  string
	gen   uint64
	timer *time.Timer
}

func NewCopier(cb Clipboard, window time.Duration, bus *events.EventBus, logger zerolog.Logger) *Copier {
	return newCopier(newWriter(cb, logger), window, bus)
}

func newCopier(w *writer, window time.Duration, bus *events.EventBus) *Copier {
	if window <= 0 {
		window = DefaultAckWindow
	}
	return &Copier{
		writer: w,
		window: window,
		bus:    bus,
	}
}

// Copy acknowledges text immediately and hands the clipboard write to the
// background writer. Clipboard failures are logged and otherwise ignored.
func (c *Copier) Copy(text string) {
	c.writer.submit(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.acked = true
	c.text = text
	c.timer = time.AfterFunc(c.window, func() { c.clear(gen) })

	c.bus.Publish(events.Event{Kind: events.CopyAcknowledged, Text: text})
}

func (c *Copier) clear(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a later Copy owns the acknowledgment now
	if gen != c.gen || !c.acked {
		return
	}
	c.acked = false
	c.timer = nil
	c.bus.Publish(events.Event{Kind: events.CopyCleared, Text: c.text})
}

func (c *Copier) Acknowledged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acked
}

func (c *Copier) Label() string {
	if c.Acknowledged() {
		return LabelAcknowledged
	}
	return LabelIdle
}

// Stop cancels a pending clear and returns the copier to idle.
func (c *Copier) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.acked = false
}
