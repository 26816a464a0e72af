// Package openevent buffers OS "open these files" events that arrive before
// the application's receiving surface exists. Some shells deliver file-open
// requests as asynchronous events rather than launch arguments, and such an
// event can beat window construction during cold start; without this buffer
// those files would be silently lost.
package openevent

import (
	"log/slog"
	"sync"

	"github.com/superexif/sendto/internal/log"
	"github.com/superexif/sendto/internal/paths"
)

// Adapter collects file-open batches until Ready, then passes them through.
type Adapter struct {
	mu      sync.Mutex
	sink    func([]string)
	ready   bool
	pending [][]string
	logger  *slog.Logger
}

func NewAdapter() *Adapter {
	return &Adapter{logger: log.WithComponent("openevent")}
}

// Install registers the sink receiving file lists. If readiness was already
// signalled, any buffered batches flush immediately in arrival order, so an
// event that beat both the sink and the surface is never stranded behind
// later ones.
func (a *Adapter) Install(onFiles func([]string)) {
	a.mu.Lock()
	a.sink = onFiles
	if !a.ready || onFiles == nil {
		a.mu.Unlock()
		return
	}
	pending := a.pending
	a.pending = nil
	a.mu.Unlock()

	for _, files := range pending {
		onFiles(files)
	}
}

// Deliver is called by the platform glue for each OS file-open event. Before
// Ready the batch is buffered; afterwards it goes straight to the sink.
func (a *Adapter) Deliver(files []string) {
	files = paths.Normalize(files)
	if len(files) == 0 {
		return
	}

	a.mu.Lock()
	if !a.ready || a.sink == nil {
		a.pending = append(a.pending, files)
		n := len(a.pending)
		a.mu.Unlock()
		a.logger.Debug("buffered open event", "files", len(files), "pending_batches", n)
		return
	}
	sink := a.sink
	a.mu.Unlock()

	sink(files)
}

// Ready signals that the receiving surface exists. All buffered batches are
// flushed through the sink in arrival order, then the adapter switches to
// direct pass-through.
func (a *Adapter) Ready() {
	a.mu.Lock()
	a.ready = true
	if a.sink == nil {
		a.mu.Unlock()
		return
	}
	pending := a.pending
	a.pending = nil
	sink := a.sink
	a.mu.Unlock()

	if len(pending) > 0 {
		a.logger.Info("flushing buffered open events", "batches", len(pending))
	}
	for _, files := range pending {
		sink(files)
	}
}
