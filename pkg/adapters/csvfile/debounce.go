package csvfile

import (
	"sync"
	"time"

	"github.com/aretw0/gridsync/pkg/core"
)

// debouncer coalesces bursts of filesystem events per path. Editors and
// export jobs commonly produce several writes in quick succession; only
// the last event inside the window is emitted.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timers  map[string]*time.Timer
	pending sync.WaitGroup
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules emit for the event, resetting any timer already pending
// for the same path.
func (d *debouncer) add(event core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if timer, ok := d.timers[event.Path]; ok {
		if timer.Stop() {
			d.pending.Done()
		}
	}

	d.pending.Add(1)
	d.timers[event.Path] = time.AfterFunc(d.window, func() {
		defer d.pending.Done()

		d.mu.Lock()
		delete(d.timers, event.Path)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			emit(event)
		}
	})
}

// stopAndWait stops accepting new events and waits (bounded) for all
// in-flight timers to finish, so the caller can safely close channels.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, timer := range d.timers {
		if timer.Stop() {
			d.pending.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
