package memcache_test

import (
	"context"
	"testing"
	"time"

	"villa_site/internal/adapters/memcache"
	"villa_site/internal/domain"
)

func TestCache_RoundTripIsolated(t *testing.T) {
	c := memcache.New(time.Minute)
	defer c.Close()
	ctx := context.Background()

	in := []domain.Season{{ID: "s1", Name: "High", PricePerNight: 450}}
	if err := c.Set(ctx, "content:season", in, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	in[0].Name = "mutated"

	var out []domain.Season
	ok, err := c.Get(ctx, "content:season", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if out[0].Name != "High" {
		t.Fatalf("cache shared memory with caller: %+v", out)
	}

	_ = c.Del(ctx, "content:season")
	if ok, _ := c.Get(ctx, "content:season", &out); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestCache_TTL(t *testing.T) {
	c := memcache.New(time.Minute)
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "k", 1, 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)

	var n int
	if ok, _ := c.Get(ctx, "k", &n); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestNop_AlwaysMisses(t *testing.T) {
	var c memcache.Nop
	_ = c.Set(context.Background(), "k", 1, 10)
	var n int
	if ok, err := c.Get(context.Background(), "k", &n); ok || err != nil {
		t.Fatalf("Nop should miss, got ok=%v err=%v", ok, err)
	}
}
