package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/scroll"
)

// rowPx converts terminal rows to the pixel units the scroll rules use.
const rowPx = 20

type lineKind int

const (
	lineBody lineKind = iota
	lineTitle
	lineTypewriter
)

type line struct {
	text string
	kind lineKind
}

type section struct {
	id    string
	title string
	top   int // first line
	lines int
}

// document is the page wrapped to a given width.
type document struct {
	lines    []line
	sections []section
}

var navLinks = []struct{ id, label string }{
	{"home", "Home"},
	{"about", "About"},
	{"projects", "Projects"},
	{"contact", "Contact"},
}

func linkLabel(id string) string {
	for _, l := range navLinks {
		if l.id == id {
			return l.label
		}
	}
	return id
}

func buildDocument(page content.Page, width, viewport int) document {
	width = max(width-4, 20)
	var doc document
	add := func(id, title string, body []line) {
		doc.sections = append(doc.sections, section{id: id, title: title, top: len(doc.lines), lines: len(body)})
		doc.lines = append(doc.lines, body...)
	}

	hero := []line{
		{text: "Hi, I'm", kind: lineBody},
		{text: page.Name, kind: lineTitle},
		{kind: lineTypewriter},
	}
	add("home", "Home", padTo(hero, viewport-2))

	about := []line{{text: "About", kind: lineTitle}, {}}
	about = append(about, wrap(page.AboutMe, width)...)
	add("about", "About", append(about, line{}))

	projects := []line{{text: "Projects", kind: lineTitle}, {}}
	for _, p := range page.Projects {
		projects = append(projects, line{text: "▸ " + p.Name, kind: lineTitle})
		projects = append(projects, wrap(p.Summary, width)...)
		projects = append(projects, line{})
	}
	add("projects", "Projects", projects)

	contact := []line{
		{text: "Contact", kind: lineTitle},
		{},
		{text: "Write to " + page.Email + " or use the form on the web site."},
	}
	add("contact", "Contact", padTo(contact, viewport-2))
	return doc
}

// scrollSections expresses section extents in scroll units.
func (d document) scrollSections() []scroll.Section {
	out := make([]scroll.Section, len(d.sections))
	for i, s := range d.sections {
		out[i] = scroll.Section{ID: s.id, Top: float64(s.top * rowPx), Height: float64(s.lines * rowPx)}
	}
	return out
}

func padTo(lines []line, n int) []line {
	for len(lines) < n {
		lines = append(lines, line{})
	}
	return lines
}

// wrap breaks text on spaces so no line is wider than width columns.
func wrap(text string, width int) []line {
	var out []line
	var current strings.Builder
	used := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if used > 0 && used+1+w > width {
			out = append(out, line{text: current.String()})
			current.Reset()
			used = 0
		}
		if used > 0 {
			current.WriteByte(' ')
			used++
		}
		current.WriteString(word)
		used += w
	}
	if used > 0 {
		out = append(out, line{text: current.String()})
	}
	return out
}
