package scroll

// Visibility of the fixed navbar.
type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "shown"
}

// NavbarRevealZone is the distance from the top where the navbar always shows.
const NavbarRevealZone = 100

// Navbar hides the navbar while scrolling down and shows it again on the way
// up or near the top.
type Navbar struct {
	lastY float64
}

// NewNavbar starts tracking from the initial scroll position.
func NewNavbar(initialY float64) *Navbar {
	return &Navbar{lastY: initialY}
}

// Observe records a new scroll position.
func (n *Navbar) Observe(scrollY float64) Visibility {
	v := Shown
	if scrollY > NavbarRevealZone && scrollY > n.lastY {
		v = Hidden
	}
	n.lastY = scrollY
	return v
}
