package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/Zachkp/portfolio/internal/theme"
)

type palette struct {
	base   tcell.Style
	title  tcell.Style
	accent tcell.Style
	muted  tcell.Style
	star   func(brightness float64) tcell.Style
}

func paletteFor(t theme.Theme) palette {
	if t == theme.Light {
		bg := tcell.NewRGBColor(245, 245, 240)
		base := tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(30, 30, 30))
		return palette{
			base:   base,
			title:  base.Foreground(tcell.NewRGBColor(20, 60, 140)).Bold(true),
			accent: base.Foreground(tcell.NewRGBColor(180, 60, 20)),
			muted:  base.Foreground(tcell.NewRGBColor(120, 120, 120)),
			star:   greyStar(base),
		}
	}
	bg := tcell.NewRGBColor(10, 12, 24)
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(225, 225, 230))
	return palette{
		base:   base,
		title:  base.Foreground(tcell.NewRGBColor(120, 180, 255)).Bold(true),
		accent: base.Foreground(tcell.NewRGBColor(255, 170, 80)),
		muted:  base.Foreground(tcell.NewRGBColor(130, 130, 150)),
		star:   greyStar(base),
	}
}

func greyStar(base tcell.Style) func(float64) tcell.Style {
	return func(b float64) tcell.Style {
		level := int32(b * 255)
		return base.Foreground(tcell.NewRGBColor(level, level, level))
	}
}

// drawText writes s from column x, one grapheme per cell group, and returns
// the column after the last cell written.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	width, _ := screen.Size()
	gr := uniseg.NewGraphemes(s)
	for gr.Next() && x < width {
		runes := gr.Runes()
		w := runewidth.StringWidth(gr.Str())
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

func fill(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
