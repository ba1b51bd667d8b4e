package domain

// Document kinds as named by the CMS `_type` field.
const (
	KindSettings    = "siteSettings"
	KindHomepage    = "homepage"
	KindRoom        = "room"
	KindSeason      = "season"
	KindExtra       = "extra"
	KindGallery     = "galleryImage"
	KindTestimonial = "testimonial"
	KindFAQ         = "faqItem"
	KindAmenity     = "amenityCategory"
	KindExperience  = "experience"
)

// AllKinds lists every document kind the site reads, singletons first.
var AllKinds = []string{
	KindSettings, KindHomepage, KindRoom, KindSeason, KindExtra,
	KindGallery, KindTestimonial, KindFAQ, KindAmenity, KindExperience,
}

// ImageRef points at a CMS image asset, e.g. "image-abc123-2000x1500-jpg".
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
	Alt string `json:"alt,omitempty"`
}

func (i *ImageRef) Empty() bool { return i == nil || i.Asset.Ref == "" }

type Address struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SiteSettings struct {
	SiteName        string    `json:"siteName,omitempty"`
	Tagline         string    `json:"tagline,omitempty"`
	Logo            *ImageRef `json:"logo,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	WhatsApp        string    `json:"whatsapp,omitempty"`
	WhatsAppMessage string    `json:"whatsappMessage,omitempty"`
	Instagram       string    `json:"instagram,omitempty"`
	Facebook        string    `json:"facebook,omitempty"`
	TripAdvisor     string    `json:"tripadvisor,omitempty"`
	BookingURL      string    `json:"bookingUrl,omitempty"`
	AirbnbURL       string    `json:"airbnbUrl,omitempty"`
	Address         *Address  `json:"address,omitempty"`
	Coordinates     *Coords   `json:"coordinates,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	SEOTitle        string    `json:"seoTitle,omitempty"`
	SEODescription  string    `json:"seoDescription,omitempty"`
	SEOKeywords     []string  `json:"seoKeywords"`
	OGImage         *ImageRef `json:"ogImage,omitempty"`
}

type Highlight struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type NearbyPlace struct {
	Name     string `json:"name,omitempty"`
	Distance string `json:"distance,omitempty"`
	Time     string `json:"time,omitempty"`
}

type GettingHere struct {
	FromAirport string `json:"fromAirport,omitempty"`
	ByTrain     string `json:"byTrain,omitempty"`
	ByBus       string `json:"byBus,omitempty"`
}

func (g *GettingHere) Any() bool {
	return g != nil && (g.FromAirport != "" || g.ByTrain != "" || g.ByBus != "")
}

type Homepage struct {
	HeroTitle        string    `json:"heroTitle,omitempty"`
	HeroSubtitle     string    `json:"heroSubtitle,omitempty"`
	HeroHeadline     string    `json:"heroHeadline,omitempty"`
	HeroDescription  string    `json:"heroDescription,omitempty"`
	HeroImage        *ImageRef `json:"heroImage,omitempty"`
	HeroVideoURL     string    `json:"heroVideoUrl,omitempty"`
	HeroCta          string    `json:"heroCta,omitempty"`
	HeroCtaSecondary string    `json:"heroCtaSecondary,omitempty"`

	AboutTitle       string      `json:"aboutTitle,omitempty"`
	AboutSubtitle    string      `json:"aboutSubtitle,omitempty"`
	AboutDescription string      `json:"aboutDescription,omitempty"`
	AboutImage       *ImageRef   `json:"aboutImage,omitempty"`
	AboutHighlights  []Highlight `json:"aboutHighlights"`

	AmenitiesTitle    string `json:"amenitiesTitle,omitempty"`
	AmenitiesSubtitle string `json:"amenitiesSubtitle,omitempty"`

	ExperiencesTitle       string `json:"experiencesTitle,omitempty"`
	ExperiencesSubtitle    string `json:"experiencesSubtitle,omitempty"`
	ExperiencesDescription string `json:"experiencesDescription,omitempty"`

	PricingTitle       string   `json:"pricingTitle,omitempty"`
	PricingSubtitle    string   `json:"pricingSubtitle,omitempty"`
	PricingDescription string   `json:"pricingDescription,omitempty"`
	PricingInclusions  []string `json:"pricingInclusions"`
	PricingNotes       []string `json:"pricingNotes"`

	LocationTitle       string        `json:"locationTitle,omitempty"`
	LocationSubtitle    string        `json:"locationSubtitle,omitempty"`
	LocationDescription string        `json:"locationDescription,omitempty"`
	NearbyPlaces        []NearbyPlace `json:"nearbyPlaces"`
	GettingHere         *GettingHere  `json:"gettingHere,omitempty"`
}

type Room struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Capacity    int        `json:"capacity,omitempty"`
	Size        string     `json:"size,omitempty"`
	BedType     string     `json:"bedType,omitempty"`
	Images      []ImageRef `json:"images"`
	Features    []string   `json:"features"`
	Description string     `json:"description,omitempty"`
}

type Season struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Period        string  `json:"period,omitempty"`
	PricePerNight float64 `json:"pricePerNight"`
	MinNights     int     `json:"minNights,omitempty"`
	Description   string  `json:"description,omitempty"`
	IsPopular     bool    `json:"isPopular,omitempty"`
}

type Extra struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description,omitempty"`
}

type GalleryImage struct {
	ID       string   `json:"_id"`
	Image    ImageRef `json:"image"`
	Category string   `json:"category,omitempty"`
	Featured bool     `json:"featured,omitempty"`
	Alt      string   `json:"alt,omitempty"`
}

type Testimonial struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"`
	Date     string    `json:"date,omitempty"`
	Rating   int       `json:"rating,omitempty"` // 0..5
	Text     string    `json:"text"`
	Avatar   *ImageRef `json:"avatar,omitempty"`
}

type FaqItem struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AmenityCategory struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon,omitempty"`
	Items []string `json:"items"`
}

type Experience struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Distance    string    `json:"distance,omitempty"`
	Tags        []string  `json:"tags"`
	Image       *ImageRef `json:"image,omitempty"`
}

// PageContent is everything the home page needs, fetched once per request.
type PageContent struct {
	Settings     *SiteSettings
	Homepage     *Homepage
	Rooms        []Room
	Seasons      []Season
	Extras       []Extra
	Gallery      []GalleryImage
	Testimonials []Testimonial
	FAQ          []FaqItem
	Amenities    []AmenityCategory
	Experiences  []Experience
}
