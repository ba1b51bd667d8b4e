package widget

// ScrollThreshold is the offset past which the navbar switches to its solid style.
const ScrollThreshold = 50

type Link struct {
	Anchor string
	Label  string
}

var navLinks = []Link{
	{"about", "About"},
	{"rooms", "Rooms"},
	{"amenities", "Amenities"},
	{"experiences", "Experiences"},
	{"gallery", "Gallery"},
	{"pricing", "Pricing"},
	{"contact", "Contact"},
}

// NavLinks are the section anchors shown in the header.
func NavLinks() []Link { return append([]Link(nil), navLinks...) }

// FooterLinks are the header links plus the FAQ.
func FooterLinks() []Link {
	out := NavLinks()
	return append(out, Link{"faq", "FAQ"})
}

// ScrollLock is whatever can freeze page scrolling behind the mobile menu.
type ScrollLock interface {
	Lock()
	Unlock()
}

// Navbar tracks scroll styling and the mobile menu.
type Navbar struct {
	lock     ScrollLock
	scrolled bool
	menuOpen bool
}

func NewNavbar(lock ScrollLock) *Navbar { return &Navbar{lock: lock} }

// Scroll records the page offset. It reports whether the style changed.
func (n *Navbar) Scroll(y float64) bool {
	s := y > ScrollThreshold
	changed := s != n.scrolled
	n.scrolled = s
	return changed
}

func (n *Navbar) Scrolled() bool { return n.scrolled }

func (n *Navbar) MenuOpen() bool { return n.menuOpen }

func (n *Navbar) ToggleMenu() {
	if n.menuOpen {
		n.CloseMenu()
		return
	}
	n.menuOpen = true
	if n.lock != nil {
		n.lock.Lock()
	}
}

// CloseMenu also runs after any menu link is followed.
func (n *Navbar) CloseMenu() {
	if !n.menuOpen {
		return
	}
	n.menuOpen = false
	if n.lock != nil {
		n.lock.Unlock()
	}
}
