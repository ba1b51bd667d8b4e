//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	httpserver "villa_site/internal/adapters/http_server"
	redisad "villa_site/internal/adapters/redis"
	"villa_site/internal/adapters/sanity"
	"villa_site/internal/app"
	"villa_site/internal/domain"
	"villa_site/internal/live"
	mysqlrepo "villa_site/internal/storage/mysql"
	"villa_site/internal/storage/mysql/mysqltest"
	"villa_site/internal/view"
)

// cms stands in for the remote CMS during a sync run.
type cms map[string][]string

func (c cms) Documents(ctx context.Context, kind string) ([]domain.Document, error) {
	var out []domain.Document
	for i, b := range c[kind] {
		var head struct {
			ID string `json:"_id"`
		}
		_ = json.Unmarshal([]byte(b), &head)
		out = append(out, domain.Document{ID: head.ID, Position: i, Body: json.RawMessage(b)})
	}
	return out, nil
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestSiteServedFromMirror(t *testing.T) {
	ctx := context.Background()
	db := mysqltest.Start(t)
	repo := mysqlrepo.New(db)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	remote := cms{
		domain.KindSettings: {`{"_id":"siteSettings","siteName":"Athmaya Villa","phone":"+94 77 123 4567","whatsapp":"94771234567"}`},
		domain.KindHomepage: {`{"_id":"homepage","heroTitle":"Barefoot luxury in Galle"}`},
		domain.KindRoom: {
			`{"_id":"r1","name":"Garden Suite","slug":"garden","maxGuests":2,"images":[{"asset":{"_ref":"image-abc-2000x1500-jpg"}}]}`,
			`{"_id":"r2","name":"Loft"}`,
		},
		domain.KindFAQ: {`{"_id":"f1","question":"Are pets allowed?","answer":"Sadly no"}`},
	}
	syncer := app.NewSyncService(remote, repo, cache)
	for _, kind := range domain.AllKinds {
		if _, err := syncer.SyncKind(ctx, kind); err != nil {
			t.Fatalf("sync %s: %v", kind, err)
		}
	}

	r, err := view.New(sanity.NewImageBuilder("proj", "production"), view.Options{Currency: "USD"})
	if err != nil {
		t.Fatal(err)
	}
	q := app.NewContentService(repo, cache, time.Minute)
	s := httpserver.New()
	s.MountHandlers(&httpserver.Handlers{Q: q, V: r, Live: live.NewHandler(q, r, nil)})
	ts := httptest.NewServer(s.Mux())
	t.Cleanup(ts.Close)

	code, body := get(t, ts.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("home: status %d", code)
	}
	for _, want := range []string{"Athmaya Villa", "Barefoot luxury in Galle", "Garden Suite", "Are pets allowed?"} {
		if !strings.Contains(body, want) {
			t.Fatalf("home missing %q", want)
		}
	}
	if !mr.Exists("villa:content:room") {
		t.Fatalf("expected room documents to be cached after first render")
	}

	if code, body = get(t, ts.URL+"/rooms/garden"); code != http.StatusOK || !strings.Contains(body, "Garden Suite") {
		t.Fatalf("room by slug: %d", code)
	}
	if code, body = get(t, ts.URL+"/rooms/r2"); code != http.StatusOK || !strings.Contains(body, "Loft") {
		t.Fatalf("room by id: %d", code)
	}
	if code, _ = get(t, ts.URL+"/rooms/missing"); code != http.StatusNotFound {
		t.Fatalf("missing room: %d", code)
	}

	// A later sync replaces the mirror and evicts the cached kind.
	remote[domain.KindRoom] = []string{`{"_id":"r3","name":"Ocean Villa","slug":"ocean"}`}
	if n, err := syncer.SyncKind(ctx, domain.KindRoom); err != nil || n != 1 {
		t.Fatalf("resync: n=%d err=%v", n, err)
	}
	if mr.Exists("villa:content:room") {
		t.Fatalf("sync should evict the cached room documents")
	}
	_, body = get(t, ts.URL+"/")
	if !strings.Contains(body, "Ocean Villa") || strings.Contains(body, "Garden Suite") {
		t.Fatalf("home should reflect the resynced rooms")
	}
	if code, _ = get(t, ts.URL+"/rooms/garden"); code != http.StatusNotFound {
		t.Fatalf("removed room should 404, got %d", code)
	}
}
