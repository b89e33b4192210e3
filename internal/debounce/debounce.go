// Package debounce coalesces bursts of triggers into a single trailing call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once the triggers stop for delay
type Debouncer struct {
	delay time.Duration
	fn    func()

	mtx     sync.Mutex
	timer   *time.Timer
	seq     uint64
	stopped bool
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger cancels the pending call, if any, and schedules a fresh one
func (d *Debouncer) Trigger() {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.mtx.Lock()
		// a timer that fired while Trigger was replacing it must not run
		current := seq == d.seq && !d.stopped
		d.mtx.Unlock()

		if current {
			d.fn()
		}
	})
}

// Stop drops the pending call and ignores any later Trigger. It reports whether a call was pending
func (d *Debouncer) Stop() bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.stopped = true
	if d.timer == nil {
		return false
	}

	return d.timer.Stop()
}
