// Package scroll turns scroll positions into navigation state: progress bar
// width, navbar visibility, the highlighted section and anchor targets.
package scroll

// Progress returns how far the page is scrolled, in percent.
func Progress(scrollY, documentHeight, viewportHeight float64) float64 {
	scrollable := documentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	p := scrollY / scrollable * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// ParallaxFactor is how fast the hero background follows the scroll.
const ParallaxFactor = 0.5

// Parallax returns the hero background offset for scrollY.
func Parallax(scrollY float64) float64 {
	return scrollY * ParallaxFactor
}
