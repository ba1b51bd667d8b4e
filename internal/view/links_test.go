package view

import (
	"testing"

	"villa_site/internal/domain"
)

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("+94 77 123 4567", "Hello! I'm interested in booking...")
	want := "https://wa.me/94771234567?text=Hello%21%20I%27m%20interested%20in%20booking..."
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	if got := WhatsAppURL("+94", "Здравствуйте"); got != "https://wa.me/94?text=%D0%97%D0%B4%D1%80%D0%B0%D0%B2%D1%81%D1%82%D0%B2%D1%83%D0%B9%D1%82%D0%B5" {
		t.Fatalf("unicode not percent-encoded: %q", got)
	}
	if WhatsAppURL("n/a", "hi") != "" {
		t.Fatalf("no digits should give no link")
	}
}

func TestTelAndMailto(t *testing.T) {
	if got := TelURL(" +94 77\t123 4567 "); got != "tel:+94771234567" {
		t.Fatalf("tel: %q", got)
	}
	if TelURL("") != "" || MailtoURL("") != "" {
		t.Fatalf("empty input should give empty link")
	}
	if MailtoURL("stay@villa.lk") != "mailto:stay@villa.lk" {
		t.Fatalf("mailto")
	}
}

func TestMapLinks(t *testing.T) {
	s := &domain.SiteSettings{
		SiteName:    "Athmaya Villa",
		Address:     &domain.Address{Line1: "12 Beach Rd", City: "Galle", Country: "Sri Lanka"},
		Coordinates: &domain.Coords{Lat: 6.0535, Lng: 80.221},
	}
	want := "https://www.google.com/maps?q=Athmaya%20Villa%2C%2012%20Beach%20Rd%2C%20Galle%2C%20Sri%20Lanka&z=16&output=embed"
	if got := MapEmbedURL(s); got != want {
		t.Fatalf("embed by address:\n got %q\nwant %q", got, want)
	}
	if got := DirectionsURL(s); got != "https://www.google.com/maps/dir/?api=1&destination=6.0535,80.221" {
		t.Fatalf("directions: %q", got)
	}

	coordsOnly := &domain.SiteSettings{Coordinates: &domain.Coords{Lat: 6.0535, Lng: 80.221}}
	if got := MapEmbedURL(coordsOnly); got != "https://www.google.com/maps?q=6.0535,80.221&z=16&output=embed" {
		t.Fatalf("embed by coords: %q", got)
	}

	nothing := &domain.SiteSettings{}
	if MapEmbedURL(nothing) != "" || DirectionsURL(nothing) != "" || MapEmbedURL(nil) != "" {
		t.Fatalf("no location should give no map")
	}
}

func TestRoomPath(t *testing.T) {
	if p := RoomPath(domain.Room{ID: "r1", Slug: "garden-suite"}); p != "/rooms/garden-suite" {
		t.Fatalf("slug path: %q", p)
	}
	if p := RoomPath(domain.Room{ID: "r1"}); p != "/rooms/r1" {
		t.Fatalf("id path: %q", p)
	}
}
