package widget

import (
	"fmt"

	"villa_site/internal/domain"
)

// FilterAll selects every image regardless of category.
const FilterAll = "all"

// Gallery is the category filter plus lightbox. The selection is an index
// into the filtered subset; -1 means the lightbox is closed.
type Gallery struct {
	images   []domain.GalleryImage
	filter   string
	selected int
}

func NewGallery(images []domain.GalleryImage) *Gallery {
	return &Gallery{images: images, filter: FilterAll, selected: -1}
}

// Categories lists "all" first, then each distinct non-empty category in
// order of first appearance.
func (g *Gallery) Categories() []string {
	out := []string{FilterAll}
	seen := map[string]bool{}
	for _, img := range g.images {
		if img.Category == "" || seen[img.Category] {
			continue
		}
		seen[img.Category] = true
		out = append(out, img.Category)
	}
	return out
}

func (g *Gallery) Filter() string { return g.filter }

// Visible is the subset matching the active filter.
func (g *Gallery) Visible() []domain.GalleryImage {
	if g.filter == FilterAll {
		return g.images
	}
	out := make([]domain.GalleryImage, 0, len(g.images))
	for _, img := range g.images {
		if img.Category == g.filter {
			out = append(out, img)
		}
	}
	return out
}

// SetFilter switches category and closes the lightbox, since the old index
// would point into a different subset.
func (g *Gallery) SetFilter(tag string) {
	if tag == "" {
		tag = FilterAll
	}
	g.filter = tag
	g.selected = -1
}

// Open selects index i of the visible subset. Out-of-range is ignored.
func (g *Gallery) Open(i int) bool {
	if i < 0 || i >= len(g.Visible()) {
		return false
	}
	g.selected = i
	return true
}

func (g *Gallery) IsOpen() bool { return g.selected >= 0 }

func (g *Gallery) Close() { g.selected = -1 }

func (g *Gallery) Next() { g.step(1) }

func (g *Gallery) Prev() { g.step(-1) }

func (g *Gallery) step(d int) {
	n := len(g.Visible())
	if g.selected < 0 || n == 0 {
		return
	}
	g.selected = wrap(g.selected+d, n)
}

// Selected returns the open image and its index in the visible subset.
func (g *Gallery) Selected() (domain.GalleryImage, int, bool) {
	vis := g.Visible()
	if g.selected < 0 || g.selected >= len(vis) {
		return domain.GalleryImage{}, -1, false
	}
	return vis[g.selected], g.selected, true
}

// Counter renders "i / n" for the open lightbox, or "" when closed.
func (g *Gallery) Counter() string {
	_, i, ok := g.Selected()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d / %d", i+1, len(g.Visible()))
}
