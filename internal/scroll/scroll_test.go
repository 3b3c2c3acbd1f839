package scroll

import (
	"testing"
	"time"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name                  string
		y, document, viewport float64
		want                  float64
	}{
		{"top", 0, 2000, 1000, 0},
		{"middle", 500, 2000, 1000, 50},
		{"bottom", 1000, 2000, 1000, 100},
		{"overscroll", 1200, 2000, 1000, 100},
		{"bounce", -30, 2000, 1000, 0},
		{"not scrollable", 0, 800, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.y, tt.document, tt.viewport); got != tt.want {
				t.Fatalf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNavbarVisibility(t *testing.T) {
	n := NewNavbar(0)
	steps := []struct {
		y    float64
		want Visibility
	}{
		{50, Shown},
		{90, Shown},
		{150, Hidden},
		{400, Hidden},
		{380, Shown},
		{500, Hidden},
		{60, Shown},
	}
	for _, s := range steps {
		if got := n.Observe(s.y); got != s.want {
			t.Fatalf("Observe(%v) = %v, want %v", s.y, got, s.want)
		}
	}
}

var page = []Section{
	{ID: "home", Top: 0, Height: 800},
	{ID: "about", Top: 800, Height: 600},
	{ID: "projects", Top: 1400, Height: 1000},
}

func TestActiveSection(t *testing.T) {
	tests := []struct {
		y    float64
		want string
		ok   bool
	}{
		{0, "home", true},
		{699, "home", true},
		{700, "about", true},
		{1300, "projects", true},
		{2300, "", false},
	}
	for _, tt := range tests {
		got, ok := ActiveSection(page, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ActiveSection(%v) = %q, %t, want %q, %t", tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestActiveSectionLastMatchWins(t *testing.T) {
	overlapping := []Section{
		{ID: "a", Top: 0, Height: 500},
		{ID: "b", Top: 100, Height: 500},
	}
	if got, _ := ActiveSection(overlapping, 100); got != "b" {
		t.Fatalf("ActiveSection() = %q, want %q", got, "b")
	}
}

func TestAnchorTarget(t *testing.T) {
	if got, ok := AnchorTarget(page, "#about"); !ok || got != 720 {
		t.Fatalf("AnchorTarget(#about) = %v, %t, want 720, true", got, ok)
	}
	if got, ok := AnchorTarget(page, "#home"); !ok || got != 0 {
		t.Fatalf("AnchorTarget(#home) = %v, %t, want 0, true", got, ok)
	}
	for _, href := range []string{"#", "#missing", "about", ""} {
		if _, ok := AnchorTarget(page, href); ok {
			t.Fatalf("AnchorTarget(%q) ok = true, want false", href)
		}
	}
}

func TestParallax(t *testing.T) {
	if got := Parallax(300); got != 150 {
		t.Fatalf("Parallax(300) = %v, want 150", got)
	}
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

func TestDebouncerCoalescesTriggers(t *testing.T) {
	calls := 0
	d := NewDebouncer(ResizeDebounce, func() { calls++ })
	var timers []*fakeTimer
	d.after = func(wait time.Duration, f func()) stopper {
		if wait != ResizeDebounce {
			t.Fatalf("wait = %v, want %v", wait, ResizeDebounce)
		}
		ft := &fakeTimer{f: f}
		timers = append(timers, ft)
		return ft
	}

	d.Trigger()
	d.Trigger()
	d.Trigger()
	for _, ft := range timers {
		if !ft.stopped {
			ft.f()
		}
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	d.Trigger()
	d.Stop()
	if last := timers[len(timers)-1]; !last.stopped {
		t.Fatal("Stop() left the pending call scheduled")
	}
}
