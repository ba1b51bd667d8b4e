package live

import (
	"strconv"

	"github.com/rs/zerolog"

	"villa_site/internal/adapters/observability"
	"villa_site/internal/domain"
	"villa_site/internal/view"
	"villa_site/internal/widget"
)

// scrollLock is held while the mobile menu is open. The nav fragment
// carries it to the client as a data attribute.
type scrollLock struct{ held bool }

func (l *scrollLock) Lock()   { l.held = true }
func (l *scrollLock) Unlock() { l.held = false }

// Session is the widget state of one open page. All methods must be called
// from the session's loop; timers reach it through the Scheduler.
type Session struct {
	ID string

	r       *view.Renderer
	page    domain.PageContent
	send    func(Patch)
	log     zerolog.Logger
	compact bool
	lock    scrollLock

	gallery  *widget.Gallery
	rooms    *widget.RoomCarousel
	reviews  *widget.Rotator
	faq      *widget.Accordion
	nav      *widget.Navbar
	launcher *widget.Launcher
}

// NewSession wires widgets for page. send delivers patches to the client
// and is only ever called on the loop.
func NewSession(id string, r *view.Renderer, page domain.PageContent, sched widget.Scheduler, compact bool, send func(Patch), log zerolog.Logger) *Session {
	s := &Session{
		ID:      id,
		r:       r,
		page:    page,
		send:    send,
		log:     log.With().Str("session", id).Logger(),
		compact: compact,
	}
	s.gallery = widget.NewGallery(page.Gallery)
	s.rooms = widget.NewRoomCarousel(widget.ViewportFunc(func() bool { return s.compact }))
	s.reviews = widget.NewRotator(sched, len(page.Testimonials), func(int) { s.render(view.FragTestimonials) })
	s.faq = widget.NewAccordion()
	s.nav = widget.NewNavbar(&s.lock)

	phone := ""
	if page.Settings != nil {
		phone = page.Settings.WhatsApp
	}
	s.launcher = widget.NewLauncher(sched, phone, func() { s.render(view.FragLauncher) })
	return s
}

// Start arms the timed widgets.
func (s *Session) Start() {
	s.reviews.Start()
	s.launcher.Mount()
}

// Close releases every timer and the scroll lock.
func (s *Session) Close() {
	s.reviews.Stop()
	s.launcher.Unmount()
	s.nav.CloseMenu()
}

func (s *Session) ScrollLocked() bool { return s.lock.held }

func (s *Session) fragment(name string) any {
	p := s.page
	switch name {
	case view.FragNav:
		return s.r.Nav(p.Settings, s.nav)
	case view.FragRooms:
		return s.r.Rooms(p.Rooms, p.Settings, s.rooms)
	case view.FragGallery:
		return s.r.Gallery(p.Gallery, s.gallery)
	case view.FragTestimonials:
		return s.r.Testimonials(p.Testimonials, s.reviews)
	case view.FragFAQ:
		return s.r.FAQ(p.FAQ, s.faq)
	case view.FragLauncher:
		return s.r.Launcher(p.Settings, s.launcher)
	}
	return nil
}

func (s *Session) render(name string) {
	html, err := s.r.Fragment(name, s.fragment(name))
	if err != nil {
		s.log.Error().Err(err).Str("fragment", name).Msg("render failed")
		return
	}
	s.send(Patch{Target: name, HTML: html})
}

// Handle applies one client event and pushes whatever changed.
func (s *Session) Handle(ev Event) {
	if !s.dispatch(ev) {
		s.log.Debug().Str("w", ev.Widget).Str("a", ev.Action).Msg("unknown event")
		observability.ObserveLiveEvent("unknown", "unknown")
		return
	}
	observability.ObserveLiveEvent(ev.Widget, ev.Action)
}

func (s *Session) dispatch(ev Event) bool {
	i, hasIndex := ev.index()

	switch ev.Widget {
	case "viewport":
		w, err := strconv.Atoi(ev.Value)
		if ev.Action != "resize" || err != nil {
			return false
		}
		s.compact = w < widget.CompactWidth
		return true

	case "nav":
		switch ev.Action {
		case "scroll":
			if s.nav.Scroll(ev.Y) {
				s.render(view.FragNav)
			}
		case "menu":
			s.nav.ToggleMenu()
			s.render(view.FragNav)
		case "close":
			s.nav.CloseMenu()
			s.render(view.FragNav)
		default:
			return false
		}
		return true

	case "gallery":
		switch ev.Action {
		case "filter":
			s.gallery.SetFilter(ev.Value)
		case "open":
			if !hasIndex {
				return false
			}
			s.gallery.Open(i)
		case "next":
			s.gallery.Next()
		case "prev":
			s.gallery.Prev()
		case "close":
			s.gallery.Close()
		default:
			return false
		}
		s.render(view.FragGallery)
		return true

	case "rooms":
		switch ev.Action {
		case "select":
			room, ok := s.findRoom(ev.Value)
			if !ok {
				return false
			}
			if !s.rooms.Select(room) {
				s.send(Patch{Navigate: view.RoomPath(room)})
				return true
			}
		case "next":
			s.rooms.Next()
		case "prev":
			s.rooms.Prev()
		case "go":
			if !hasIndex {
				return false
			}
			s.rooms.Go(i)
		case "close":
			s.rooms.Close()
		default:
			return false
		}
		s.render(view.FragRooms)
		return true

	case "testimonials":
		switch ev.Action {
		case "next":
			s.reviews.Next()
		case "prev":
			s.reviews.Prev()
		case "go":
			if !hasIndex {
				return false
			}
			s.reviews.Go(i)
		case "hover":
			s.reviews.Hover(ev.Value == "on")
		default:
			return false
		}
		return true

	case "faq":
		if ev.Action != "toggle" || !hasIndex || i < 0 || i >= len(s.page.FAQ) {
			return false
		}
		s.faq.Toggle(i)
		s.render(view.FragFAQ)
		return true

	case "launcher":
		if ev.Action != "dismiss" {
			return false
		}
		s.launcher.Dismiss()
		return true
	}
	return false
}

func (s *Session) findRoom(key string) (domain.Room, bool) {
	for _, r := range s.page.Rooms {
		if r.Slug != "" && r.Slug == key {
			return r, true
		}
	}
	for _, r := range s.page.Rooms {
		if r.ID == key {
			return r, true
		}
	}
	return domain.Room{}, false
}
