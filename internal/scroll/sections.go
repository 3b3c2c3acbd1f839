package scroll

import "strings"

// Section is a page section with an id, in document coordinates.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

const (
	// HighlightOffset moves the probe below the fixed navbar.
	HighlightOffset = 100
	// AnchorOffset keeps anchor targets clear of the fixed navbar.
	AnchorOffset = 80
)

// ActiveSection returns the id of the section under the probe line. When
// sections overlap the last one in document order wins.
func ActiveSection(sections []Section, scrollY float64) (string, bool) {
	probe := scrollY + HighlightOffset
	active, found := "", false
	for _, s := range sections {
		if probe >= s.Top && probe < s.Top+s.Height {
			active, found = s.ID, true
		}
	}
	return active, found
}

// AnchorTarget resolves an in-page href such as "#projects" to the scroll
// position that shows it below the navbar.
func AnchorTarget(sections []Section, href string) (float64, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return 0, false
	}
	for _, s := range sections {
		if s.ID == id {
			return max(s.Top-AnchorOffset, 0), true
		}
	}
	return 0, false
}
