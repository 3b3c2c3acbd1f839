// Package tui renders the portfolio in a terminal: typewriter hero, navbar
// with the active section, scroll progress, starfield and the menu overlay.
package tui

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/menu"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

// frameInterval paces the starfield rotation.
const frameInterval = 50 * time.Millisecond

// localOwner keys the terminal user's preferences.
const localOwner = "terminal"

type (
	frameTick struct{}
	textDirty struct{}
	relayout  struct{}
	quit      struct{}
)

// Options configure an App.
type Options struct {
	Page       content.Page
	Typewriter content.Typewriter
	// Preferences persists the theme between runs. Nil keeps it in memory.
	Preferences *theme.Preferences
	Logger      *log.Logger
	// Seed makes the starfield reproducible. Zero picks a random seed.
	Seed uint64
}

// App owns the screen and every effect drawn on it.
type App struct {
	screen tcell.Screen
	page   content.Page
	prefs  *theme.Preferences
	logger *log.Logger
	rng    *rand.Rand

	engine *typewriter.Engine
	textMu sync.Mutex
	typed  string

	theme   theme.Theme
	palette palette
	field   *starfield.Field
	menu    *menu.Overlay
	menuSel int
	// menuOpened and menuDelays drive the staggered entrance of menu links.
	menuOpened time.Time
	menuDelays []time.Duration
	menuShown  int
	navbar     *scroll.Navbar
	navShown   bool
	resize     *scroll.Debouncer

	doc     document
	scrollY int // first visible document line
	active  string

	now func() time.Time
}

// New prepares an App on an initialized screen. Close releases it.
func New(screen tcell.Screen, opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	a := &App{
		screen:   screen,
		page:     opts.Page,
		prefs:    opts.Preferences,
		logger:   opts.Logger,
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		theme:    theme.Default,
		navbar:   scroll.NewNavbar(0),
		navShown: true,
		now:      time.Now,
	}

	engine, err := typewriter.New(opts.Typewriter.Phrases, typewriter.SinkFunc(a.setTyped), opts.Typewriter.Timing,
		typewriter.WithLogger(opts.Logger))
	if err != nil {
		return nil, fmt.Errorf("typewriter: %w", err)
	}
	a.engine = engine

	ids := make([]string, len(navLinks))
	for i, l := range navLinks {
		ids[i] = l.id
	}
	a.menu = menu.NewOverlay(ids)
	a.menu.OnShow(func(delays []time.Duration) {
		a.menuOpened = a.now()
		a.menuDelays = delays
		a.menuShown = 0
	})
	a.resize = scroll.NewDebouncer(scroll.ResizeDebounce, func() {
		a.post(relayout{})
	})

	if a.prefs != nil {
		a.theme = a.prefs.Load(context.Background(), localOwner)
	}
	a.palette = paletteFor(a.theme)
	a.field = starfield.Generate(starfield.DefaultCount, a.rng)
	a.field.Recolor(a.theme, a.rng)
	a.layout()
	return a, nil
}

// Close stops every timer the App started. The caller still owns the
// screen.
func (a *App) Close() {
	a.engine.Stop()
	a.resize.Stop()
}

// Run draws and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	a.engine.Start()
	go a.tick(done)
	go func() {
		select {
		case <-ctx.Done():
			a.postQuit(done)
		case <-done:
		}
	}()

	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.handle(ev) {
			return ctx.Err()
		}
		a.draw()
	}
}

func (a *App) tick(done <-chan struct{}) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			a.post(frameTick{})
		}
	}
}

// post queues an interrupt; a full queue drops it, the next one redraws.
func (a *App) post(data any) {
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// postQuit retries until the quit interrupt is queued, since a dropped one
// would leave Run blocked in PollEvent.
func (a *App) postQuit(done <-chan struct{}) {
	for a.screen.PostEvent(tcell.NewEventInterrupt(quit{})) != nil {
		select {
		case <-done:
			return
		case <-time.After(frameInterval):
		}
	}
}

func (a *App) setTyped(text string) {
	a.textMu.Lock()
	a.typed = text
	a.textMu.Unlock()
	a.post(textDirty{})
}

func (a *App) typedText() string {
	a.textMu.Lock()
	defer a.textMu.Unlock()
	return a.typed
}

// handle applies one event and reports whether the app keeps running.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case quit:
			return false
		case frameTick:
			a.field.Advance()
			a.revealMenuLinks()
		case relayout:
			a.layout()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize.Trigger()
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && a.menu.IsOpen() {
			x, y := ev.Position()
			if !a.menuBox().contains(x, y) {
				a.menu.ClickBackdrop()
			}
		}
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if a.menu.ScrollLocked() {
		a.handleMenuKey(ev)
		return true
	}

	_, height := a.screen.Size()
	switch ev.Key() {
	case tcell.KeyDown:
		a.scrollTo(a.scrollY + 1)
	case tcell.KeyUp:
		a.scrollTo(a.scrollY - 1)
	case tcell.KeyPgDn:
		a.scrollTo(a.scrollY + height - 2)
	case tcell.KeyPgUp:
		a.scrollTo(a.scrollY - height + 2)
	case tcell.KeyHome:
		a.scrollTo(0)
	case tcell.KeyEnd:
		a.scrollTo(len(a.doc.lines))
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'j':
			a.scrollTo(a.scrollY + 1)
		case 'k':
			a.scrollTo(a.scrollY - 1)
		case 't':
			a.toggleTheme()
		case 'm':
			a.menuSel = 0
			a.menu.Open()
		case '1', '2', '3', '4':
			a.jumpTo(navLinks[r-'1'].id)
		}
	}
	return true
}

func (a *App) handleMenuKey(ev *tcell.EventKey) {
	links := a.menu.Links()
	switch ev.Key() {
	case tcell.KeyEscape:
		a.menu.HandleKey("Escape")
	case tcell.KeyDown:
		a.menuSel = (a.menuSel + 1) % len(links)
	case tcell.KeyUp:
		a.menuSel = (a.menuSel + len(links) - 1) % len(links)
	case tcell.KeyEnter:
		id := links[a.menuSel]
		if a.menu.SelectLink(id) {
			a.jumpTo(id)
		}
	case tcell.KeyRune:
		if ev.Rune() == 'm' {
			a.menu.Close()
		}
	}
}

// revealMenuLinks shows every menu link whose entrance delay has passed.
func (a *App) revealMenuLinks() {
	if !a.menu.IsOpen() {
		return
	}
	elapsed := a.now().Sub(a.menuOpened)
	shown := 0
	for _, d := range a.menuDelays {
		if d > elapsed {
			break
		}
		shown++
	}
	a.menuShown = shown
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Toggle()
	a.palette = paletteFor(a.theme)
	a.field.Recolor(a.theme, a.rng)
	if a.prefs == nil {
		return
	}
	if err := a.prefs.Save(context.Background(), localOwner, a.theme); err != nil {
		a.logger.Printf("Error saving theme preference: %v", err)
	}
}

func (a *App) jumpTo(id string) {
	target, ok := scroll.AnchorTarget(a.doc.scrollSections(), "#"+id)
	if !ok {
		return
	}
	a.scrollTo(int(target) / rowPx)
}

func (a *App) scrollTo(y int) {
	_, height := a.screen.Size()
	limit := max(len(a.doc.lines)-(height-2), 0)
	a.scrollY = min(max(y, 0), limit)
	a.navShown = a.navbar.Observe(float64(a.scrollY*rowPx)) == scroll.Shown
}

func (a *App) layout() {
	width, height := a.screen.Size()
	a.doc = buildDocument(a.page, width, height)
	a.scrollTo(a.scrollY)
}

// activeSection is the section the navbar highlights. Between sections the
// last highlight stays.
func (a *App) activeSection() string {
	if id, ok := scroll.ActiveSection(a.doc.scrollSections(), float64(a.scrollY*rowPx)); ok {
		a.active = id
	}
	return a.active
}

// starShift is how many rows the starfield trails the page by.
func (a *App) starShift() int {
	return int(scroll.Parallax(float64(a.scrollY*rowPx))) / rowPx
}

func (a *App) progress() float64 {
	_, height := a.screen.Size()
	return scroll.Progress(float64(a.scrollY), float64(len(a.doc.lines)), float64(height-2))
}
