package widget

// Accordion keeps at most one item open.
type Accordion struct {
	open int
}

func NewAccordion() *Accordion { return &Accordion{open: -1} }

// Toggle opens i, closing any other item, or closes i if already open.
// Negative indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

func (a *Accordion) IsOpen(i int) bool { return i >= 0 && a.open == i }

// Open returns the open index, or -1.
func (a *Accordion) Open() int { return a.open }
