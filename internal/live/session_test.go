package live_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"villa_site/internal/domain"
	"villa_site/internal/live"
	"villa_site/internal/view"
	"villa_site/internal/widget"
)

type fakeImages struct{}

func (fakeImages) ImageURL(ref domain.ImageRef, o domain.ImageOpts) string {
	return fmt.Sprintf("https://img.test/%s?w=%d", ref.Asset.Ref, o.Width)
}

func ref(id string) domain.ImageRef {
	var r domain.ImageRef
	r.Asset.Ref = id
	return r
}

func intp(i int) *int { return &i }

func testPage() domain.PageContent {
	gal := func(id, cat string) domain.GalleryImage {
		return domain.GalleryImage{ID: id, Image: ref("image-" + id + "-10x10-jpg"), Category: cat}
	}
	return domain.PageContent{
		Settings: &domain.SiteSettings{SiteName: "Athmaya Villa", WhatsApp: "94771234567"},
		Rooms: []domain.Room{{
			ID: "r1", Name: "Garden Suite", Slug: "garden",
			Images: []domain.ImageRef{ref("image-ra-10x10-jpg"), ref("image-rb-10x10-jpg")},
		}},
		Gallery: []domain.GalleryImage{
			gal("v1", "villa"), gal("p1", "pool"), gal("v2", "villa"), gal("p2", "pool"), gal("p3", "pool"),
		},
		Testimonials: []domain.Testimonial{
			{ID: "t1", Name: "Ana", Text: "first review"},
			{ID: "t2", Name: "Bob", Text: "second review"},
		},
		FAQ: []domain.FaqItem{{ID: "f1", Question: "Pets?", Answer: "Sadly no"}},
	}
}

type recorder struct{ patches []live.Patch }

func (r *recorder) send(p live.Patch) { r.patches = append(r.patches, p) }

func (r *recorder) last(t *testing.T) live.Patch {
	t.Helper()
	if len(r.patches) == 0 {
		t.Fatalf("no patches sent")
	}
	return r.patches[len(r.patches)-1]
}

func newSession(t *testing.T, compact bool) (*live.Session, *widget.ManualScheduler, *recorder) {
	t.Helper()
	r, err := view.New(fakeImages{}, view.Options{})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	sched := widget.NewManualScheduler()
	rec := &recorder{}
	s := live.NewSession("test", r, testPage(), sched, compact, rec.send, zerolog.New(io.Discard))
	return s, sched, rec
}

func TestSession_GalleryFilterOpenWrap(t *testing.T) {
	s, _, rec := newSession(t, false)
	s.Handle(live.Event{Widget: "gallery", Action: "filter", Value: "pool"})
	s.Handle(live.Event{Widget: "gallery", Action: "open", Index: intp(1)})
	s.Handle(live.Event{Widget: "gallery", Action: "next"})
	s.Handle(live.Event{Widget: "gallery", Action: "next"})

	p := rec.last(t)
	if p.Target != view.FragGallery || !strings.Contains(p.HTML, "1 / 3") {
		t.Fatalf("expected first pool image in lightbox, got %q: %s", p.Target, p.HTML)
	}
	if len(rec.patches) != 4 {
		t.Fatalf("one patch per event, got %d", len(rec.patches))
	}
}

func TestSession_RoomSelectDependsOnViewport(t *testing.T) {
	s, _, rec := newSession(t, true)
	s.Handle(live.Event{Widget: "rooms", Action: "select", Value: "garden"})
	if p := rec.last(t); p.Navigate != "/rooms/garden" {
		t.Fatalf("compact select should navigate, got %+v", p)
	}

	s.Handle(live.Event{Widget: "viewport", Action: "resize", Value: "1280"})
	s.Handle(live.Event{Widget: "rooms", Action: "select", Value: "r1"})
	p := rec.last(t)
	if p.Target != view.FragRooms || !strings.Contains(p.HTML, `role="dialog"`) {
		t.Fatalf("wide select should open the overlay: %+v", p)
	}
	s.Handle(live.Event{Widget: "rooms", Action: "next"})
	if !strings.Contains(rec.last(t).HTML, "image-rb-10x10-jpg?w=1200") {
		t.Fatalf("next should show the second image")
	}
	s.Handle(live.Event{Widget: "rooms", Action: "close"})
	if strings.Contains(rec.last(t).HTML, `role="dialog"`) {
		t.Fatalf("close should drop the overlay")
	}
}

func TestSession_TimersDrivePatches(t *testing.T) {
	s, sched, rec := newSession(t, false)
	s.Start()

	sched.Advance(2 * time.Second)
	if p := rec.last(t); p.Target != view.FragLauncher || !strings.Contains(p.HTML, "launcher visible") {
		t.Fatalf("launcher should appear at 2s: %+v", p)
	}
	sched.Advance(3 * time.Second)
	var sawReview bool
	for _, p := range rec.patches {
		if p.Target == view.FragTestimonials && strings.Contains(p.HTML, "second review") {
			sawReview = true
		}
	}
	if !sawReview {
		t.Fatalf("rotator should advance at 5s")
	}

	s.Close()
	if sched.Pending() != 0 {
		t.Fatalf("close left %d timers", sched.Pending())
	}
}

func TestSession_HoverPausesRotation(t *testing.T) {
	s, sched, rec := newSession(t, false)
	s.Start()
	s.Handle(live.Event{Widget: "testimonials", Action: "hover", Value: "on"})
	sched.Advance(20 * time.Second)
	for _, p := range rec.patches {
		if p.Target == view.FragTestimonials {
			t.Fatalf("no rotation while hovered")
		}
	}
	s.Close()
}

func TestSession_MenuScrollLock(t *testing.T) {
	s, _, rec := newSession(t, false)
	s.Handle(live.Event{Widget: "nav", Action: "menu"})
	if !s.ScrollLocked() || !strings.Contains(rec.last(t).HTML, "data-scroll-lock") {
		t.Fatalf("open menu should lock scrolling")
	}
	s.Close()
	if s.ScrollLocked() {
		t.Fatalf("close should release the lock")
	}
}

func TestSession_ScrollOnlyPatchesOnChange(t *testing.T) {
	s, _, rec := newSession(t, false)
	s.Handle(live.Event{Widget: "nav", Action: "scroll", Y: 10})
	s.Handle(live.Event{Widget: "nav", Action: "scroll", Y: 120})
	s.Handle(live.Event{Widget: "nav", Action: "scroll", Y: 300})
	if len(rec.patches) != 1 || !strings.Contains(rec.patches[0].HTML, "navbar solid") {
		t.Fatalf("expected a single solid-nav patch, got %+v", rec.patches)
	}
}

func TestSession_FAQAndUnknown(t *testing.T) {
	s, _, rec := newSession(t, false)
	s.Handle(live.Event{Widget: "faq", Action: "toggle", Index: intp(0)})
	if !strings.Contains(rec.last(t).HTML, "Sadly no") {
		t.Fatalf("answer should be visible")
	}
	n := len(rec.patches)
	s.Handle(live.Event{Widget: "faq", Action: "toggle"})
	s.Handle(live.Event{Widget: "weather", Action: "rain"})
	s.Handle(live.Event{Widget: "rooms", Action: "select", Value: "nope"})
	if len(rec.patches) != n {
		t.Fatalf("invalid events must not patch")
	}
}

func TestSession_FAQIndexOutOfRange(t *testing.T) {
	s, _, rec := newSession(t, false)
	s.Handle(live.Event{Widget: "faq", Action: "toggle", Index: intp(0)})
	n := len(rec.patches)
	s.Handle(live.Event{Widget: "faq", Action: "toggle", Index: intp(999)})
	s.Handle(live.Event{Widget: "faq", Action: "toggle", Index: intp(-1)})
	if len(rec.patches) != n {
		t.Fatalf("out-of-range toggles must not patch")
	}
	s.Handle(live.Event{Widget: "faq", Action: "toggle", Index: intp(0)})
	if strings.Contains(rec.last(t).HTML, "Sadly no") {
		t.Fatalf("item 0 should still have been open, so this toggle closes it")
	}
}
