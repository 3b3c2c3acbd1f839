package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/theme"
)

type box struct{ x0, y0, x1, y1 int }

func (b box) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

func (a *App) menuBox() box {
	width, height := a.screen.Size()
	w, h := 24, len(navLinks)+4
	x0, y0 := max((width-w)/2, 0), max((height-h)/2, 0)
	return box{x0, y0, min(x0+w, width), min(y0+h, height)}
}

func (a *App) draw() {
	s := a.screen
	width, height := s.Size()
	p := a.palette
	s.SetStyle(p.base)
	s.Clear()

	shift := a.starShift()
	for _, pt := range a.field.Project(width, height) {
		y := pt.Y - shift
		if y < 0 {
			continue
		}
		glyph := '.'
		if pt.Brightness > 0.8 {
			glyph = '*'
		}
		s.SetContent(pt.X, y, glyph, nil, p.star(pt.Brightness))
	}

	const top = 2
	for row := 0; row < height-top; row++ {
		i := a.scrollY + row
		if i >= len(a.doc.lines) {
			break
		}
		a.drawLine(2, top+row, a.doc.lines[i])
	}

	a.drawProgress(width)
	if a.navShown {
		a.drawNavbar(width)
	}
	if a.menu.IsOpen() {
		a.drawMenu()
	}
	s.Show()
}

func (a *App) drawLine(x, y int, l line) {
	p := a.palette
	switch l.kind {
	case lineTitle:
		drawText(a.screen, x, y, l.text, p.title)
	case lineTypewriter:
		x = drawText(a.screen, x, y, "I'm a ", p.base)
		x = drawText(a.screen, x, y, a.typedText(), p.accent)
		a.screen.SetContent(x, y, '▌', nil, p.accent)
	default:
		drawText(a.screen, x, y, l.text, p.base)
	}
}

func (a *App) drawProgress(width int) {
	filled := int(a.progress() / 100 * float64(width))
	for x := 0; x < width; x++ {
		style := a.palette.muted
		if x < filled {
			style = a.palette.accent
		}
		a.screen.SetContent(x, 0, '━', nil, style)
	}
}

func (a *App) drawNavbar(width int) {
	p := a.palette
	fill(a.screen, 0, 1, width, 2, p.base)
	active := a.activeSection()
	x := 2
	for i, l := range navLinks {
		style := p.muted
		if l.id == active {
			style = p.title.Reverse(true)
		}
		x = drawText(a.screen, x, 1, " "+string(rune('1'+i))+" "+l.label+" ", style) + 1
	}
	icon := "☀ " + a.theme.String()
	if a.theme == theme.Light {
		icon = "☾ " + a.theme.String()
	}
	drawText(a.screen, width-runewidth.StringWidth(icon)-2, 1, icon, p.accent)
}

func (a *App) drawMenu() {
	p := a.palette
	b := a.menuBox()
	fill(a.screen, b.x0, b.y0, b.x1, b.y1, p.base.Reverse(true))
	drawText(a.screen, b.x0+2, b.y0+1, "Menu (Esc to close)", p.base.Reverse(true))
	for i, id := range a.menu.Links()[:a.menuShown] {
		style := p.base.Reverse(true)
		if i == a.menuSel {
			style = p.accent.Reverse(true).Bold(true)
		}
		drawText(a.screen, b.x0+4, b.y0+3+i, linkLabel(id), style)
	}
}
