package view

import (
	"html/template"

	"villa_site/internal/domain"
	"villa_site/internal/widget"
)

// Section builders turn CMS content (plus widget state, for the interactive
// sections) into view models. Each returns nil when it has nothing to show,
// and the matching template renders nothing for nil.

type Image struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

func (r *Renderer) image(ref *domain.ImageRef, alt string, w, h int, fit string) *Image {
	if ref.Empty() {
		return nil
	}
	u := r.img.ImageURL(*ref, domain.ImageOpts{Width: w, Height: h, Fit: fit})
	if u == "" {
		return nil
	}
	if ref.Alt != "" {
		alt = ref.Alt
	}
	return &Image{URL: u, Alt: alt, Width: w, Height: h}
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ---- navigation ----

type NavView struct {
	// Base prefixes section anchors on pages other than the home page.
	Base       string
	SiteName   string
	Logo       *Image
	Links      []widget.Link
	BookingURL string
	Scrolled   bool
	MenuOpen   bool
}

func (r *Renderer) Nav(s *domain.SiteSettings, n *widget.Navbar) *NavView {
	if n == nil {
		n = widget.NewNavbar(nil)
	}
	v := &NavView{
		SiteName: defaultSiteName,
		Links:    widget.NavLinks(),
		Scrolled: n.Scrolled(),
		MenuOpen: n.MenuOpen(),
	}
	if s != nil {
		v.SiteName = or(s.SiteName, defaultSiteName)
		v.Logo = r.image(s.Logo, or(s.SiteName, "Logo"), 150, 50, "")
		v.BookingURL = s.BookingURL
	}
	return v
}

// ---- hero / about ----

type HeroView struct {
	Headline     string
	Title        string
	Subtitle     string
	Description  string
	Image        *Image
	VideoURL     string
	CTA          string
	CTAURL       string
	CTASecondary string
}

func (r *Renderer) Hero(h *domain.Homepage, s *domain.SiteSettings) *HeroView {
	if h == nil {
		return nil
	}
	v := &HeroView{
		Headline:     h.HeroHeadline,
		Title:        h.HeroTitle,
		Subtitle:     h.HeroSubtitle,
		Description:  h.HeroDescription,
		Image:        r.image(h.HeroImage, or(h.HeroTitle, "Villa"), 1920, 1080, ""),
		VideoURL:     h.HeroVideoURL,
		CTASecondary: h.HeroCtaSecondary,
	}
	if s != nil && s.BookingURL != "" && h.HeroCta != "" {
		v.CTA, v.CTAURL = h.HeroCta, s.BookingURL
	}
	return v
}

type HighlightView struct {
	Icon        string
	Title       string
	Description string
}

type AboutView struct {
	Title       string
	Subtitle    string
	Description string
	Image       *Image
	Highlights  []HighlightView
}

func (r *Renderer) About(h *domain.Homepage) *AboutView {
	if h == nil {
		return nil
	}
	v := &AboutView{
		Title:       or(h.AboutTitle, "Welcome"),
		Subtitle:    h.AboutSubtitle,
		Description: h.AboutDescription,
		Image:       r.image(h.AboutImage, or(h.AboutTitle, "About"), 800, 1000, ""),
	}
	for _, hl := range h.AboutHighlights {
		v.Highlights = append(v.Highlights, HighlightView{
			Icon:        HighlightIcon(hl.Icon),
			Title:       hl.Title,
			Description: hl.Description,
		})
	}
	return v
}

// ---- amenities / experiences ----

type AmenityView struct {
	Name  string
	Icon  string
	Items []string
}

type AmenitiesView struct {
	Title      string
	Subtitle   string
	Categories []AmenityView
}

func (r *Renderer) Amenities(h *domain.Homepage, cs []domain.AmenityCategory) *AmenitiesView {
	if len(cs) == 0 {
		return nil
	}
	v := &AmenitiesView{Title: "Villa Amenities", Subtitle: "What We Offer"}
	if h != nil {
		v.Title = or(h.AmenitiesTitle, v.Title)
		v.Subtitle = or(h.AmenitiesSubtitle, v.Subtitle)
	}
	for _, c := range cs {
		v.Categories = append(v.Categories, AmenityView{Name: c.Name, Icon: AmenityIcon(c.Icon), Items: c.Items})
	}
	return v
}

type ExperienceCard struct {
	Title       string
	Description string
	Duration    string
	Distance    string
	Tags        []string
	Image       *Image
}

type ExperiencesView struct {
	Title       string
	Subtitle    string
	Description string
	Cards       []ExperienceCard
}

const maxCardTags = 2

func (r *Renderer) Experiences(h *domain.Homepage, es []domain.Experience) *ExperiencesView {
	if len(es) == 0 {
		return nil
	}
	v := &ExperiencesView{Title: "Local Experiences", Subtitle: "Discover"}
	if h != nil {
		v.Title = or(h.ExperiencesTitle, v.Title)
		v.Subtitle = or(h.ExperiencesSubtitle, v.Subtitle)
		v.Description = h.ExperiencesDescription
	}
	for _, e := range es {
		c := ExperienceCard{
			Title:       e.Title,
			Description: e.Description,
			Duration:    e.Duration,
			Distance:    e.Distance,
			Image:       r.image(e.Image, e.Title, 600, 400, ""),
		}
		for i, t := range e.Tags {
			if i == maxCardTags {
				break
			}
			c.Tags = append(c.Tags, TagLabel(t))
		}
		v.Cards = append(v.Cards, c)
	}
	return v
}

// ---- rooms ----

type RoomCard struct {
	Key      string
	Name     string
	Path     string
	Capacity int
	Size     string
	Bed      string
	Image    *Image
}

type RoomDetail struct {
	Name        string
	Description string
	Capacity    int
	Size        string
	Bed         string
	Features    []string
	Image       *Image
	Index       int
	Dots        []Dot
	BookingURL  string
}

type Dot struct {
	Index  int
	Active bool
}

type RoomsView struct {
	Cards   []RoomCard
	Overlay *RoomDetail
}

func dots(n, active int) []Dot {
	if n < 2 {
		return nil
	}
	out := make([]Dot, n)
	for i := range out {
		out[i] = Dot{Index: i, Active: i == active}
	}
	return out
}

func roomKey(rm domain.Room) string {
	if rm.Slug != "" {
		return rm.Slug
	}
	return rm.ID
}

func (r *Renderer) Rooms(rooms []domain.Room, s *domain.SiteSettings, c *widget.RoomCarousel) *RoomsView {
	if len(rooms) == 0 {
		return nil
	}
	v := &RoomsView{}
	for _, rm := range rooms {
		card := RoomCard{
			Key:      roomKey(rm),
			Name:     rm.Name,
			Path:     RoomPath(rm),
			Capacity: rm.Capacity,
			Size:     rm.Size,
			Bed:      BedTypeLabel(rm.BedType),
		}
		if len(rm.Images) > 0 {
			card.Image = r.image(&rm.Images[0], rm.Name, 600, 450, "")
		}
		v.Cards = append(v.Cards, card)
	}
	if c != nil {
		if rm, ok := c.Room(); ok {
			v.Overlay = r.RoomDetail(rm, s, c.Image())
		}
	}
	return v
}

// RoomDetail is shared by the overlay and the standalone room page.
func (r *Renderer) RoomDetail(rm domain.Room, s *domain.SiteSettings, image int) *RoomDetail {
	d := &RoomDetail{
		Name:        rm.Name,
		Description: rm.Description,
		Capacity:    rm.Capacity,
		Size:        rm.Size,
		Bed:         BedTypeLabel(rm.BedType),
		Features:    rm.Features,
		Index:       image,
		Dots:        dots(len(rm.Images), image),
	}
	if image >= 0 && image < len(rm.Images) {
		d.Image = r.image(&rm.Images[image], rm.Name, 1200, 675, "")
	}
	if s != nil {
		d.BookingURL = s.BookingURL
	}
	return d
}

// ---- pricing ----

type SeasonCard struct {
	Name        string
	Period      string
	Price       string
	MinNights   int
	Description string
	Popular     bool
}

type ExtraRow struct {
	Name        string
	Description string
	Price       string
	Unit        string
}

type PricingView struct {
	Title       string
	Subtitle    string
	Description string
	Seasons     []SeasonCard
	Inclusions  []string
	Extras      []ExtraRow
	Notes       []string
}

func (r *Renderer) currency(s *domain.SiteSettings) string {
	if s != nil && s.Currency != "" {
		return s.Currency
	}
	return r.opts.Currency
}

func (r *Renderer) Pricing(h *domain.Homepage, s *domain.SiteSettings, seasons []domain.Season, extras []domain.Extra) *PricingView {
	if len(seasons) == 0 {
		return nil
	}
	cur := r.currency(s)
	v := &PricingView{Title: "Rates & Packages", Subtitle: "Pricing"}
	if h != nil {
		v.Title = or(h.PricingTitle, v.Title)
		v.Subtitle = or(h.PricingSubtitle, v.Subtitle)
		v.Description = h.PricingDescription
		v.Inclusions = h.PricingInclusions
		v.Notes = h.PricingNotes
	}
	for _, se := range seasons {
		v.Seasons = append(v.Seasons, SeasonCard{
			Name:        se.Name,
			Period:      se.Period,
			Price:       FormatCurrency(se.PricePerNight, cur),
			MinNights:   se.MinNights,
			Description: se.Description,
			Popular:     se.IsPopular,
		})
	}
	for _, e := range extras {
		v.Extras = append(v.Extras, ExtraRow{
			Name:        e.Name,
			Description: e.Description,
			Price:       FormatCurrency(e.Price, cur),
			Unit:        UnitLabel(e.Unit),
		})
	}
	return v
}

// ---- gallery ----

type FilterTab struct {
	Tag    string
	Label  string
	Active bool
}

type Thumb struct {
	Index    int
	Image    *Image
	Featured bool
}

type Lightbox struct {
	Image   *Image
	Counter string
}

type GalleryView struct {
	Filters  []FilterTab
	Thumbs   []Thumb
	Lightbox *Lightbox
}

func galleryAlt(g domain.GalleryImage) string {
	if g.Alt != "" {
		return g.Alt
	}
	return or(CategoryLabel(g.Category), "Gallery image")
}

func (r *Renderer) Gallery(images []domain.GalleryImage, g *widget.Gallery) *GalleryView {
	if len(images) == 0 {
		return nil
	}
	if g == nil {
		g = widget.NewGallery(images)
	}
	v := &GalleryView{}
	for _, tag := range g.Categories() {
		v.Filters = append(v.Filters, FilterTab{Tag: tag, Label: CategoryLabel(tag), Active: tag == g.Filter()})
	}
	for i, im := range g.Visible() {
		size := 400
		if im.Featured {
			size = 800
		}
		img := im.Image
		v.Thumbs = append(v.Thumbs, Thumb{Index: i, Image: r.image(&img, galleryAlt(im), size, size, ""), Featured: im.Featured})
	}
	if sel, _, ok := g.Selected(); ok {
		img := sel.Image
		v.Lightbox = &Lightbox{Image: r.image(&img, galleryAlt(sel), 1400, 0, "max"), Counter: g.Counter()}
	}
	return v
}

// ---- testimonials / faq ----

type TestimonialCard struct {
	Name     string
	Location string
	Date     string
	Text     string
	Stars    []bool
	Avatar   *Image
}

type TestimonialsView struct {
	Current TestimonialCard
	Dots    []Dot
}

const maxStars = 5

func (r *Renderer) Testimonials(ts []domain.Testimonial, rot *widget.Rotator) *TestimonialsView {
	if len(ts) == 0 {
		return nil
	}
	i := 0
	if rot != nil && rot.Index() < len(ts) {
		i = rot.Index()
	}
	t := ts[i]
	// No rating, no star row.
	var stars []bool
	if t.Rating > 0 {
		stars = make([]bool, maxStars)
		for k := range stars {
			stars[k] = k < t.Rating
		}
	}
	return &TestimonialsView{
		Current: TestimonialCard{
			Name:     t.Name,
			Location: t.Location,
			Date:     t.Date,
			Text:     t.Text,
			Stars:    stars,
			Avatar:   r.image(t.Avatar, t.Name, 100, 100, ""),
		},
		Dots: dots(len(ts), i),
	}
}

type FAQRow struct {
	Index    int
	Question string
	Answer   string
	Open     bool
}

type FAQView struct {
	Items []FAQRow
}

func (r *Renderer) FAQ(items []domain.FaqItem, a *widget.Accordion) *FAQView {
	if len(items) == 0 {
		return nil
	}
	v := &FAQView{}
	for i, it := range items {
		v.Items = append(v.Items, FAQRow{Index: i, Question: it.Question, Answer: it.Answer, Open: a != nil && a.IsOpen(i)})
	}
	return v
}

// ---- location / contact / footer ----

type LocationView struct {
	Title       string
	Subtitle    string
	Description string
	MapEmbed    string
	Directions  string
	Nearby      []domain.NearbyPlace
	GettingHere *domain.GettingHere
}

func (r *Renderer) Location(h *domain.Homepage, s *domain.SiteSettings) *LocationView {
	if h == nil {
		return nil
	}
	v := &LocationView{
		Title:       or(h.LocationTitle, "Location"),
		Subtitle:    or(h.LocationSubtitle, "Find Us"),
		Description: h.LocationDescription,
		MapEmbed:    MapEmbedURL(s),
		Directions:  DirectionsURL(s),
		Nearby:      h.NearbyPlaces,
	}
	if h.GettingHere.Any() {
		v.GettingHere = h.GettingHere
	}
	return v
}

type ContactView struct {
	Email      string
	Mailto     string
	Phone      string
	Tel        template.URL // html/template would otherwise reject the tel: scheme
	WhatsApp   string
	Instagram  string
	Facebook   string
	BookingURL string
	AirbnbURL  string
}

func (r *Renderer) whatsAppMessage(s *domain.SiteSettings) string {
	if s != nil && s.WhatsAppMessage != "" {
		return s.WhatsAppMessage
	}
	return r.opts.WhatsAppMessage
}

func (r *Renderer) Contact(s *domain.SiteSettings) *ContactView {
	if s == nil {
		return nil
	}
	return &ContactView{
		Email:      s.Email,
		Mailto:     MailtoURL(s.Email),
		Phone:      s.Phone,
		Tel:        template.URL(TelURL(s.Phone)),
		WhatsApp:   WhatsAppURL(s.WhatsApp, r.whatsAppMessage(s)),
		Instagram:  s.Instagram,
		Facebook:   s.Facebook,
		BookingURL: s.BookingURL,
		AirbnbURL:  s.AirbnbURL,
	}
}

type FooterView struct {
	SiteName    string
	Tagline     string
	Links       []widget.Link
	Contact     ContactView
	TripAdvisor string
	Year        int
}

// Footer always renders, with defaults when settings are missing.
func (r *Renderer) Footer(s *domain.SiteSettings) *FooterView {
	v := &FooterView{SiteName: defaultSiteName, Links: widget.FooterLinks(), Year: r.now().Year()}
	if s != nil {
		v.SiteName = or(s.SiteName, defaultSiteName)
		v.Tagline = s.Tagline
		v.Contact = *r.Contact(s)
		v.TripAdvisor = s.TripAdvisor
	}
	return v
}

// ---- contact launcher ----

type LauncherView struct {
	URL     string
	Visible bool
	Tooltip bool
}

func (r *Renderer) Launcher(s *domain.SiteSettings, l *widget.Launcher) *LauncherView {
	if s == nil || s.WhatsApp == "" {
		return nil
	}
	u := WhatsAppURL(s.WhatsApp, r.whatsAppMessage(s))
	if u == "" {
		return nil
	}
	v := &LauncherView{URL: u}
	if l != nil {
		v.Visible, v.Tooltip = l.Visible(), l.TooltipShown()
	}
	return v
}

// ---- whole pages ----

type PageView struct {
	Meta         Meta
	Live         bool
	Nav          *NavView
	Hero         *HeroView
	About        *AboutView
	Amenities    *AmenitiesView
	Experiences  *ExperiencesView
	Rooms        *RoomsView
	Pricing      *PricingView
	Gallery      *GalleryView
	Testimonials *TestimonialsView
	FAQ          *FAQView
	Location     *LocationView
	Contact      *ContactView
	Footer       *FooterView
	Launcher     *LauncherView
}

// Page builds the initial server-rendered home page: every widget in its
// resting state.
func (r *Renderer) Page(p domain.PageContent) PageView {
	return PageView{
		Meta:         r.Meta(p.Settings),
		Live:         true,
		Nav:          r.Nav(p.Settings, nil),
		Hero:         r.Hero(p.Homepage, p.Settings),
		About:        r.About(p.Homepage),
		Amenities:    r.Amenities(p.Homepage, p.Amenities),
		Experiences:  r.Experiences(p.Homepage, p.Experiences),
		Rooms:        r.Rooms(p.Rooms, p.Settings, nil),
		Pricing:      r.Pricing(p.Homepage, p.Settings, p.Seasons, p.Extras),
		Gallery:      r.Gallery(p.Gallery, nil),
		Testimonials: r.Testimonials(p.Testimonials, nil),
		FAQ:          r.FAQ(p.FAQ, nil),
		Location:     r.Location(p.Homepage, p.Settings),
		Contact:      r.Contact(p.Settings),
		Footer:       r.Footer(p.Settings),
		Launcher:     r.Launcher(p.Settings, nil),
	}
}

type RoomPageView struct {
	Meta   Meta
	Nav    *NavView
	Room   *RoomDetail
	Images []*Image
	Footer *FooterView
}

func (r *Renderer) RoomPage(rm domain.Room, s *domain.SiteSettings) RoomPageView {
	m := r.Meta(s)
	m.Title = rm.Name + " | " + m.Title
	if rm.Description != "" {
		m.Description = rm.Description
	}
	nav := r.Nav(s, nil)
	nav.Base = "/"
	nav.Scrolled = true
	v := RoomPageView{
		Meta:   m,
		Nav:    nav,
		Room:   r.RoomDetail(rm, s, 0),
		Footer: r.Footer(s),
	}
	for i := range rm.Images {
		if img := r.image(&rm.Images[i], rm.Name, 1200, 675, ""); img != nil {
			v.Images = append(v.Images, img)
		}
	}
	return v
}
