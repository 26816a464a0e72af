// Package receipt funnels the three file-receipt producers (cold-start argv,
// platform open events, socket hand-offs) into one ordered event stream and
// delivers each event to the application's file-listing collaborator.
package receipt

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/superexif/sendto/internal/log"
	"github.com/superexif/sendto/internal/paths"
)

//go:generate mockgen -destination=mocks/mock_navigator.go -package=mocks github.com/superexif/sendto/internal/receipt Navigator

// Navigator is the narrow interface to the external file-listing
// collaborator. Opening the directory, waiting for its listing, and applying
// the multi-selection all happen behind it; the dispatcher does no I/O.
type Navigator interface {
	OpenDirectoryThenSelect(dir string, selection []string) error
}

// queueCapacity bounds bursts from concurrent producers without blocking
// them on navigator latency.
const queueCapacity = 16

// Dispatcher reduces every producer to "build an Event, enqueue it"; one
// consumer goroutine owns ordering and delivery.
type Dispatcher struct {
	nav    Navigator
	queue  chan Event
	logger *slog.Logger
}

func NewDispatcher(nav Navigator) *Dispatcher {
	return &Dispatcher{
		nav:    nav,
		queue:  make(chan Event, queueCapacity),
		logger: log.WithComponent("receipt"),
	}
}

// OnFilesReceived is the single entry point all three producers call.
// Producers above this layer should already pass absolute paths; anything
// else is a caller error that gets normalized rather than dropped.
//
// Run must be active to drain the queue: once queueCapacity receipts are
// pending, this call blocks the producer (including the instance server's
// accept goroutine) until the consumer catches up.
func (d *Dispatcher) OnFilesReceived(files []string, source Source) {
	for _, f := range files {
		if !filepath.IsAbs(f) {
			d.logger.Warn("non-absolute path from producer, normalizing", "path", f, "source", source)
			break
		}
	}

	files = paths.Normalize(files)
	if len(files) == 0 {
		d.logger.Debug("ignoring receipt with no usable paths", "source", source)
		return
	}

	ev := Event{
		ID:     uuid.NewString(),
		Files:  files,
		Source: source,
		At:     time.Now().UTC(),
	}
	d.logger.Info("receipt queued", "event_id", ev.ID, "source", source, "files", len(files))
	d.queue <- ev
}

// Run consumes the queue until ctx is cancelled. The anchor directory is the
// first path's parent; navigator failures are logged, never propagated —
// a bad receipt must not take the dispatcher down.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("dispatch loop started")
	defer d.logger.Info("dispatch loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-d.queue:
			anchor := filepath.Dir(ev.Files[0])
			if err := d.nav.OpenDirectoryThenSelect(anchor, ev.Files); err != nil {
				d.logger.Error("navigator rejected receipt", "event_id", ev.ID, "error", err)
			}
		}
	}
}
