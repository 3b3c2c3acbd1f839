// Package menu tracks the mobile navigation overlay.
package menu

import (
	"sync"
	"time"
)

const (
	staggerDelay = 200 * time.Millisecond
	staggerStep  = 100 * time.Millisecond
)

// Overlay is the full-screen mobile menu. Page scrolling is locked while it
// is open.
type Overlay struct {
	mu     sync.Mutex
	open   bool
	links  []string
	onShow func(delays []time.Duration)
}

// NewOverlay returns a closed overlay listing the given link ids.
func NewOverlay(links []string) *Overlay {
	return &Overlay{links: append([]string(nil), links...)}
}

// OnShow registers a callback that receives the entrance delay of each link
// every time the overlay opens.
func (o *Overlay) OnShow(fn func(delays []time.Duration)) {
	o.mu.Lock()
	o.onShow = fn
	o.mu.Unlock()
}

// Links returns the link ids in display order.
func (o *Overlay) Links() []string {
	return append([]string(nil), o.links...)
}

func (o *Overlay) Open() {
	o.mu.Lock()
	if o.open {
		o.mu.Unlock()
		return
	}
	o.open = true
	fn := o.onShow
	n := len(o.links)
	o.mu.Unlock()

	if fn != nil {
		fn(Stagger(n))
	}
}

func (o *Overlay) Close() {
	o.mu.Lock()
	o.open = false
	o.mu.Unlock()
}

func (o *Overlay) Toggle() {
	if o.IsOpen() {
		o.Close()
		return
	}
	o.Open()
}

func (o *Overlay) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

// ScrollLocked reports whether the page behind the overlay must not scroll.
func (o *Overlay) ScrollLocked() bool {
	return o.IsOpen()
}

// SelectLink closes the overlay and reports whether id is one of its links.
func (o *Overlay) SelectLink(id string) bool {
	o.Close()
	for _, link := range o.links {
		if link == id {
			return true
		}
	}
	return false
}

// ClickBackdrop closes the overlay when the click lands outside the links.
func (o *Overlay) ClickBackdrop() {
	o.Close()
}

// HandleKey closes an open overlay on Escape and reports whether the key was
// consumed.
func (o *Overlay) HandleKey(key string) bool {
	if key != "Escape" || !o.IsOpen() {
		return false
	}
	o.Close()
	return true
}

// Stagger returns the entrance delay of n links.
func Stagger(n int) []time.Duration {
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = staggerDelay + time.Duration(i)*staggerStep
	}
	return delays
}
