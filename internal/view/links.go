package view

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"villa_site/internal/domain"
)

// encodeComponent escapes s for use inside a query value, with spaces as
// %20 so messaging apps don't show literal plus signs.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// WhatsAppURL builds a wa.me deep link. wa.me only accepts digits.
func WhatsAppURL(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	u := "https://wa.me/" + digits
	if message != "" {
		u += "?text=" + encodeComponent(message)
	}
	return u
}

func TelURL(phone string) string {
	p := stripSpace(phone)
	if p == "" {
		return ""
	}
	return "tel:" + p
}

func MailtoURL(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

func coordString(c *domain.Coords) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

func hasCoords(c *domain.Coords) bool { return c != nil && (c.Lat != 0 || c.Lng != 0) }

// MapEmbedURL prefers a textual address and falls back to coordinates.
// Empty means there is nothing to locate.
func MapEmbedURL(s *domain.SiteSettings) string {
	if s == nil {
		return ""
	}
	var parts []string
	if s.SiteName != "" {
		parts = append(parts, s.SiteName)
	}
	if a := s.Address; a != nil {
		for _, p := range []string{a.Line1, a.City, a.Country} {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	var q string
	switch {
	case len(parts) > 0:
		q = encodeComponent(strings.Join(parts, ", "))
	case hasCoords(s.Coordinates):
		q = coordString(s.Coordinates)
	default:
		return ""
	}
	return "https://www.google.com/maps?q=" + q + "&z=16&output=embed"
}

// DirectionsURL needs coordinates; an address alone is too ambiguous.
func DirectionsURL(s *domain.SiteSettings) string {
	if s == nil || !hasCoords(s.Coordinates) {
		return ""
	}
	return "https://www.google.com/maps/dir/?api=1&destination=" + coordString(s.Coordinates)
}

// RoomPath addresses a room's detail page by slug, else by id.
func RoomPath(r domain.Room) string {
	key := r.Slug
	if key == "" {
		key = r.ID
	}
	return "/rooms/" + url.PathEscape(key)
}
