package app

import (
	"encoding/json"
	"fmt"

	"villa_site/internal/domain"
)

/********** decoding **********/

// decodeList decodes every document body into T, preserving order.
func decodeList[T any](kind string, docs []domain.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d.Body, &v); err != nil {
			return nil, fmt.Errorf("decode %s %q: %w", kind, d.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeOne returns nil when the singleton has not been created yet.
func decodeOne[T any](kind string, docs []domain.Document) (*T, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	list, err := decodeList[T](kind, docs[:1])
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

/********** list normalization: absent lists become empty, never nil **********/

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func normalizeSettings(s *domain.SiteSettings) {
	if s == nil {
		return
	}
	s.SEOKeywords = orEmpty(s.SEOKeywords)
}

func normalizeHomepage(h *domain.Homepage) {
	if h == nil {
		return
	}
	h.AboutHighlights = orEmpty(h.AboutHighlights)
	h.PricingInclusions = orEmpty(h.PricingInclusions)
	h.PricingNotes = orEmpty(h.PricingNotes)
	h.NearbyPlaces = orEmpty(h.NearbyPlaces)
}

func normalizeRooms(rs []domain.Room) []domain.Room {
	for i := range rs {
		rs[i].Images = orEmpty(rs[i].Images)
		rs[i].Features = orEmpty(rs[i].Features)
	}
	return orEmpty(rs)
}

func normalizeAmenities(cs []domain.AmenityCategory) []domain.AmenityCategory {
	for i := range cs {
		cs[i].Items = orEmpty(cs[i].Items)
	}
	return orEmpty(cs)
}

func normalizeExperiences(es []domain.Experience) []domain.Experience {
	for i := range es {
		es[i].Tags = orEmpty(es[i].Tags)
	}
	return orEmpty(es)
}

// clampRatings keeps ratings inside 0..5 regardless of what editors typed.
func clampRatings(ts []domain.Testimonial) []domain.Testimonial {
	for i := range ts {
		switch {
		case ts[i].Rating < 0:
			ts[i].Rating = 0
		case ts[i].Rating > 5:
			ts[i].Rating = 5
		}
	}
	return orEmpty(ts)
}

// normalize applies every list default to a freshly fetched page.
func normalize(p *domain.PageContent) {
	normalizeSettings(p.Settings)
	normalizeHomepage(p.Homepage)
	p.Rooms = normalizeRooms(p.Rooms)
	p.Seasons = orEmpty(p.Seasons)
	p.Extras = orEmpty(p.Extras)
	p.Gallery = orEmpty(p.Gallery)
	p.Testimonials = clampRatings(p.Testimonials)
	p.FAQ = orEmpty(p.FAQ)
	p.Amenities = normalizeAmenities(p.Amenities)
	p.Experiences = normalizeExperiences(p.Experiences)
}
