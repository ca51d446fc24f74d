package clipboard

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// WriteTimeout bounds how long a single clipboard write is waited for.
const WriteTimeout = 5 * time.Second

// writer applies clipboard writes off the caller's goroutine, one at a time.
// A write that is superseded before it starts is skipped, so the clipboard
// ends up holding the most recent copy.
type writer struct {
	mu      sync.Mutex
	cb      Clipboard
	seq     atomic.Uint64
	timeout time.Duration
	logger  zerolog.Logger
}

func newWriter(cb Clipboard, logger zerolog.Logger) *writer {
	return &writer{
		cb:      cb,
		timeout: WriteTimeout,
		logger:  logger,
	}
}

func (w *writer) submit(text string) {
	if w.cb == nil {
		return
	}
	seq := w.seq.Add(1)
	go w.write(seq, text)
}

func (w *writer) write(seq uint64, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.seq.Load() != seq {
		return
	}

	done := make(chan error, 1)
	go func() { done <- w.cb.Write(text) }()

	timer := time.NewTimer(w.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			w.logger.Debug().Err(err).Msg("clipboard write failed")
		}
	case <-timer.C:
		// the helper is left to finish on its own
		w.logger.Debug().Dur("timeout", w.timeout).Msg("clipboard write timed out")
	}
}
