package widget

import "villa_site/internal/domain"

// Viewport reports the device class of whoever is looking at the page.
type Viewport interface {
	Compact() bool
}

// CompactWidth is the breakpoint below which a viewport counts as compact.
const CompactWidth = 768

type FixedViewport bool

func (v FixedViewport) Compact() bool { return bool(v) }

type ViewportFunc func() bool

func (f ViewportFunc) Compact() bool { return f() }

// RoomCarousel is the room detail overlay with its image carousel.
type RoomCarousel struct {
	vp    Viewport
	room  *domain.Room
	image int
}

func NewRoomCarousel(vp Viewport) *RoomCarousel {
	if vp == nil {
		vp = FixedViewport(false)
	}
	return &RoomCarousel{vp: vp}
}

// Select opens room at its first image. On compact viewports it does
// nothing and returns false; the caller should navigate to the room page.
func (c *RoomCarousel) Select(room domain.Room) bool {
	if c.vp.Compact() {
		return false
	}
	c.room = &room
	c.image = 0
	return true
}

func (c *RoomCarousel) Room() (domain.Room, bool) {
	if c.room == nil {
		return domain.Room{}, false
	}
	return *c.room, true
}

func (c *RoomCarousel) Image() int { return c.image }

func (c *RoomCarousel) Next() { c.step(1) }

func (c *RoomCarousel) Prev() { c.step(-1) }

func (c *RoomCarousel) step(d int) {
	if c.room == nil || len(c.room.Images) == 0 {
		return
	}
	c.image = wrap(c.image+d, len(c.room.Images))
}

// Go jumps to image i, clamped to the room's images.
func (c *RoomCarousel) Go(i int) {
	if c.room == nil || len(c.room.Images) == 0 {
		return
	}
	c.image = clamp(i, len(c.room.Images))
}

func (c *RoomCarousel) Close() {
	c.room = nil
	c.image = 0
}
