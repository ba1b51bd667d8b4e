package view

import (
	"strings"

	"villa_site/internal/domain"
)

const (
	defaultTitle       = "Luxury Villa"
	defaultDescription = "A luxury villa experience"
	defaultSiteName    = "Athmaya Villa"
)

type Meta struct {
	Title       string
	Description string
	Keywords    string
	SiteName    string
	OGImage     string
	TwitterCard string
}

func (r *Renderer) Meta(s *domain.SiteSettings) Meta {
	m := Meta{
		Title:       defaultTitle,
		Description: defaultDescription,
		SiteName:    defaultSiteName,
		TwitterCard: "summary_large_image",
	}
	if s == nil {
		return m
	}
	switch {
	case s.SEOTitle != "":
		m.Title = s.SEOTitle
	case s.SiteName != "":
		m.Title = s.SiteName
	}
	if s.SEODescription != "" {
		m.Description = s.SEODescription
	}
	if s.SiteName != "" {
		m.SiteName = s.SiteName
	}
	m.Keywords = strings.Join(s.SEOKeywords, ", ")
	if img := r.image(s.OGImage, "", 1200, 630, ""); img != nil {
		m.OGImage = img.URL
	}
	return m
}
