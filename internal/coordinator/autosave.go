package coordinator

import (
	"sync"
	"time"

	"github.com/alexanderramin/weekboard/internal/store"
)

// autosaver coalesces state changes into one write after a quiet period:
// each change resets the timer, so only a pause triggers the save. Bounds
// write volume while keeping crash data loss to a sub-second window.
type autosaver struct {
	delay time.Duration
	save  func(store.State)

	mu      sync.Mutex
	timer   *time.Timer
	pending *store.State
	closed  bool
}

func newAutosaver(delay time.Duration, save func(store.State)) *autosaver {
	return &autosaver{delay: delay, save: save}
}

// schedule records the latest state and (re)starts the quiet-period timer.
func (a *autosaver) schedule(st store.State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = &st
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

func (a *autosaver) fire() {
	a.mu.Lock()
	st := a.pending
	a.pending = nil
	a.mu.Unlock()

	if st != nil {
		a.save(*st)
	}
}

// flush writes any pending state immediately.
func (a *autosaver) flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.fire()
}

// close stops the saver after writing pending state.
func (a *autosaver) close() {
	a.flush()
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
}
