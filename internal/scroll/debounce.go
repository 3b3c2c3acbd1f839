package scroll

import (
	"sync"
	"time"
)

// ResizeDebounce is the quiet period before a resize is handled.
const ResizeDebounce = 250 * time.Millisecond

type stopper interface {
	Stop() bool
}

// Debouncer calls fn once the triggers have been quiet for wait.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func()
	timer stopper
	after func(time.Duration, func()) stopper
}

// NewDebouncer returns a trailing-edge debouncer.
func NewDebouncer(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		wait: wait,
		fn:   fn,
		after: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.after(d.wait, d.fn)
}

// Stop drops any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
