package widget_test

import (
	"testing"

	"villa_site/internal/widget"
)

type countingLock struct{ held int }

func (l *countingLock) Lock()   { l.held++ }
func (l *countingLock) Unlock() { l.held-- }

func TestNavbar_ScrollThreshold(t *testing.T) {
	n := widget.NewNavbar(nil)
	if n.Scroll(50) || n.Scrolled() {
		t.Fatalf("50 is not past the threshold")
	}
	if !n.Scroll(51) || !n.Scrolled() {
		t.Fatalf("51 should switch style")
	}
	if n.Scroll(400) {
		t.Fatalf("no change expected")
	}
}

func TestNavbar_MenuHoldsScrollLock(t *testing.T) {
	lock := &countingLock{}
	n := widget.NewNavbar(lock)
	n.ToggleMenu()
	if !n.MenuOpen() || lock.held != 1 {
		t.Fatalf("menu open should hold the lock: %d", lock.held)
	}
	n.CloseMenu()
	n.CloseMenu()
	if n.MenuOpen() || lock.held != 0 {
		t.Fatalf("lock must be released exactly once: %d", lock.held)
	}
	n.ToggleMenu()
	n.ToggleMenu()
	if lock.held != 0 {
		t.Fatalf("toggle twice leaves lock %d", lock.held)
	}
}

func TestNavbar_Links(t *testing.T) {
	if len(widget.NavLinks()) != 7 {
		t.Fatalf("nav links: %v", widget.NavLinks())
	}
	f := widget.FooterLinks()
	if len(f) != 8 || f[7].Anchor != "faq" {
		t.Fatalf("footer links: %v", f)
	}
}
