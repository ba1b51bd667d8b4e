package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"villa_site/internal/app"
	"villa_site/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	mu    sync.Mutex
	docs  map[string][]domain.Document
	errOn string
	calls map[string]int
}

func (f *fakeSource) Documents(ctx context.Context, kind string) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[kind]++
	if kind == f.errOn {
		return nil, errors.New("remote 503")
	}
	return f.docs[kind], nil
}

func (f *fakeSource) count(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[kind]
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	c.store[key] = b
	return err
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

func docs(bodies ...string) []domain.Document {
	out := make([]domain.Document, len(bodies))
	for i, b := range bodies {
		var head struct {
			ID string `json:"_id"`
		}
		_ = json.Unmarshal([]byte(b), &head)
		out[i] = domain.Document{ID: head.ID, Position: i, Body: json.RawMessage(b)}
	}
	return out
}

// ---- tests ----

func TestPage_DecodesAndNormalizes(t *testing.T) {
	src := &fakeSource{docs: map[string][]domain.Document{
		domain.KindSettings: docs(`{"_id":"siteSettings","siteName":"Athmaya Villa"}`),
		domain.KindHomepage: docs(`{"_id":"homepage","heroTitle":"Welcome"}`),
		domain.KindRoom:     docs(`{"_id":"r1","name":"Garden Suite","slug":"garden"}`),
		domain.KindTestimonial: docs(
			`{"_id":"t1","name":"Ana","rating":9,"text":"Lovely"}`,
			`{"_id":"t2","name":"Bob","rating":-1,"text":"Fine"}`,
		),
		domain.KindAmenity: docs(`{"_id":"a1","name":"Pool"}`),
	}}
	q := app.NewContentService(src, nil, 0)

	p, err := q.Page(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.Settings == nil || p.Settings.SiteName != "Athmaya Villa" || p.Settings.SEOKeywords == nil {
		t.Fatalf("unexpected settings: %+v", p.Settings)
	}
	if p.Homepage == nil || p.Homepage.AboutHighlights == nil || p.Homepage.NearbyPlaces == nil {
		t.Fatalf("homepage lists must be non-nil: %+v", p.Homepage)
	}
	if len(p.Rooms) != 1 || p.Rooms[0].Images == nil || p.Rooms[0].Features == nil {
		t.Fatalf("room lists must be non-nil: %+v", p.Rooms)
	}
	if p.Testimonials[0].Rating != 5 || p.Testimonials[1].Rating != 0 {
		t.Fatalf("ratings not clamped: %+v", p.Testimonials)
	}
	if p.Amenities[0].Items == nil {
		t.Fatalf("amenity items must be non-nil")
	}
	if p.Seasons == nil || p.Extras == nil || p.Gallery == nil || p.FAQ == nil || p.Experiences == nil {
		t.Fatalf("absent collections must be empty, not nil: %+v", p)
	}
}

func TestPage_MissingSingletonsAreNil(t *testing.T) {
	q := app.NewContentService(&fakeSource{}, nil, 0)
	p, err := q.Page(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.Settings != nil || p.Homepage != nil {
		t.Fatalf("expected nil singletons, got %+v %+v", p.Settings, p.Homepage)
	}
}

func TestPage_PropagatesFetchError(t *testing.T) {
	q := app.NewContentService(&fakeSource{errOn: domain.KindGallery}, nil, 0)
	if _, err := q.Page(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPage_CacheMissThenHit(t *testing.T) {
	src := &fakeSource{docs: map[string][]domain.Document{
		domain.KindFAQ: docs(`{"_id":"f1","question":"Pets?","answer":"No"}`),
	}}
	q := app.NewContentService(src, &fakeCache{}, 10*time.Minute)

	if _, err := q.Page(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	src.docs[domain.KindFAQ] = docs(`{"_id":"f1","question":"SHOULD NOT SEE THIS","answer":"x"}`)

	p, err := q.Page(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.FAQ[0].Question != "Pets?" {
		t.Fatalf("expected cached question, got %q", p.FAQ[0].Question)
	}
	if n := src.count(domain.KindFAQ); n != 1 {
		t.Fatalf("expected one source call, got %d", n)
	}
}

func TestPage_ZeroTTLBypassesCache(t *testing.T) {
	src := &fakeSource{}
	q := app.NewContentService(src, &fakeCache{}, 0)
	_, _ = q.Page(context.Background())
	_, _ = q.Page(context.Background())
	if n := src.count(domain.KindRoom); n != 2 {
		t.Fatalf("expected a fetch per page load, got %d", n)
	}
}

func TestRoom_BySlugThenID(t *testing.T) {
	src := &fakeSource{docs: map[string][]domain.Document{
		domain.KindRoom: docs(
			`{"_id":"r1","name":"Garden Suite","slug":"garden"}`,
			`{"_id":"r2","name":"Loft"}`,
		),
	}}
	q := app.NewContentService(src, nil, 0)
	ctx := context.Background()

	r, err := q.Room(ctx, "garden")
	if err != nil || r.ID != "r1" {
		t.Fatalf("slug lookup: %+v %v", r, err)
	}
	r, err = q.Room(ctx, "r2")
	if err != nil || r.Name != "Loft" {
		t.Fatalf("id fallback: %+v %v", r, err)
	}
	if _, err := q.Room(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettings_Absent(t *testing.T) {
	q := app.NewContentService(&fakeSource{}, nil, 0)
	s, err := q.Settings(context.Background())
	if err != nil || s != nil {
		t.Fatalf("expected nil settings, got %+v %v", s, err)
	}
}
