package clipboard

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Integra-layer/chain-id-card/events"
)

// Board holds one Copier per copy target. Targets are identified by the text
// they copy, so two buttons for the same address share feedback.
type Board struct {
	mu      sync.Mutex
	copiers map[string]*Copier
	writer  *writer
	window  time.Duration
	bus     *events.EventBus
}

func NewBoard(cb Clipboard, window time.Duration, bus *events.EventBus, logger zerolog.Logger) *Board {
	logger = logger.With().Str("component", "clipboard").Logger()
	return &Board{
		copiers: make(map[string]*Copier),
		writer:  newWriter(cb, logger),
		window:  window,
		bus:     bus,
	}
}

func (b *Board) Copy(text string) {
	b.copier(text).Copy(text)
}

func (b *Board) Acknowledged(text string) bool {
	b.mu.Lock()
	c, ok := b.copiers[text]
	b.mu.Unlock()
	return ok && c.Acknowledged()
}

func (b *Board) Label(text string) string {
	if b.Acknowledged(text) {
		return LabelAcknowledged
	}
	return LabelIdle
}

// Stop cancels every pending acknowledgment.
func (b *Board) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.copiers {
		c.Stop()
	}
}

func (b *Board) copier(text string) *Copier {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.copiers[text]
	if !ok {
		c = newCopier(b.writer, b.window, b.bus)
		b.copiers[text] = c
	}
	return c
}
