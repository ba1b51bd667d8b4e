package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"villa_site/internal/domain"
)

// ContentService reads CMS content for page renders. Each kind is cached
// independently as raw documents; a zero TTL disables caching.
type ContentService struct {
	src      domain.DocumentSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewContentService(src domain.DocumentSource, c domain.Cache, ttl time.Duration) *ContentService {
	return &ContentService{src: src, cache: c, cacheTTL: ttl}
}

func cacheKey(kind string) string { return "content:" + kind }

func (s *ContentService) documents(ctx context.Context, kind string) ([]domain.Document, error) {
	key := cacheKey(kind)
	if s.cache != nil && s.cacheTTL > 0 {
		var docs []domain.Document
		ok, err := s.cache.Get(ctx, key, &docs)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		if ok && err == nil {
			return docs, nil
		}
	}

	docs, err := s.src.Documents(ctx, kind)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, key, docs, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return docs, nil
}

// Page fetches every kind concurrently. The first failure cancels the rest
// and is returned; partial pages are never rendered.
func (s *ContentService) Page(ctx context.Context) (domain.PageContent, error) {
	raw := make([][]domain.Document, len(domain.AllKinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range domain.AllKinds {
		i, kind := i, kind
		g.Go(func() error {
			docs, err := s.documents(gctx, kind)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", kind, err)
			}
			raw[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.PageContent{}, err
	}

	byKind := make(map[string][]domain.Document, len(raw))
	for i, kind := range domain.AllKinds {
		byKind[kind] = raw[i]
	}

	var (
		p   domain.PageContent
		err error
	)
	if p.Settings, err = decodeOne[domain.SiteSettings](domain.KindSettings, byKind[domain.KindSettings]); err != nil {
		return p, err
	}
	if p.Homepage, err = decodeOne[domain.Homepage](domain.KindHomepage, byKind[domain.KindHomepage]); err != nil {
		return p, err
	}
	if p.Rooms, err = decodeList[domain.Room](domain.KindRoom, byKind[domain.KindRoom]); err != nil {
		return p, err
	}
	if p.Seasons, err = decodeList[domain.Season](domain.KindSeason, byKind[domain.KindSeason]); err != nil {
		return p, err
	}
	if p.Extras, err = decodeList[domain.Extra](domain.KindExtra, byKind[domain.KindExtra]); err != nil {
		return p, err
	}
	if p.Gallery, err = decodeList[domain.GalleryImage](domain.KindGallery, byKind[domain.KindGallery]); err != nil {
		return p, err
	}
	if p.Testimonials, err = decodeList[domain.Testimonial](domain.KindTestimonial, byKind[domain.KindTestimonial]); err != nil {
		return p, err
	}
	if p.FAQ, err = decodeList[domain.FaqItem](domain.KindFAQ, byKind[domain.KindFAQ]); err != nil {
		return p, err
	}
	if p.Amenities, err = decodeList[domain.AmenityCategory](domain.KindAmenity, byKind[domain.KindAmenity]); err != nil {
		return p, err
	}
	if p.Experiences, err = decodeList[domain.Experience](domain.KindExperience, byKind[domain.KindExperience]); err != nil {
		return p, err
	}
	normalize(&p)
	return p, nil
}

// Settings returns nil, nil when the settings document does not exist yet.
func (s *ContentService) Settings(ctx context.Context) (*domain.SiteSettings, error) {
	docs, err := s.documents(ctx, domain.KindSettings)
	if err != nil {
		return nil, err
	}
	st, err := decodeOne[domain.SiteSettings](domain.KindSettings, docs)
	normalizeSettings(st)
	return st, err
}

// Room resolves a detail address: slug first, then document id.
func (s *ContentService) Room(ctx context.Context, key string) (domain.Room, error) {
	docs, err := s.documents(ctx, domain.KindRoom)
	if err != nil {
		return domain.Room{}, err
	}
	rooms, err := decodeList[domain.Room](domain.KindRoom, docs)
	if err != nil {
		return domain.Room{}, err
	}
	rooms = normalizeRooms(rooms)
	for _, r := range rooms {
		if r.Slug != "" && r.Slug == key {
			return r, nil
		}
	}
	for _, r := range rooms {
		if r.ID == key {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}
