// Package watcher implements file system watching for the watch command.
package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer collects changed paths and hands them to onBatch as one sorted
// batch once no new path has arrived for the window.
type Debouncer struct {
	window  time.Duration
	onBatch func(paths []string)

	mu      sync.Mutex
	pending []string
	timer   *time.Timer
}

// NewDebouncer creates a Debouncer. onBatch must not be nil.
func NewDebouncer(window time.Duration, onBatch func(paths []string)) *Debouncer {
	return &Debouncer{window: window, onBatch: onBatch}
}

// Add records path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !slices.Contains(d.pending, path) {
		d.pending = append(d.pending, path)
	}

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.deliver)
		return
	}
	d.timer.Reset(d.window)
}

// Flush delivers the pending batch immediately and returns once onBatch has.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.deliver()
}

func (d *Debouncer) deliver() {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	slices.Sort(batch)
	d.onBatch(batch)
}
