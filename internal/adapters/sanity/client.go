// internal/adapters/sanity/client.go
package sanity

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"villa_site/internal/adapters/observability"
	"villa_site/internal/domain"
)

type Options struct {
	ProjectID  string
	Dataset    string
	APIVersion string // e.g. "2024-01-01"
	Token      string // optional; required for private datasets
	UseCDN     bool
	RPS        int
	// BaseURL overrides the computed API host (tests, proxies).
	BaseURL string
}

type Client struct {
	base string
	hc   *http.Client
	tok  string
	rl   *rate.Limiter
}

func New(o Options) (*Client, error) {
	if o.BaseURL == "" && o.ProjectID == "" {
		return nil, fmt.Errorf("sanity project id is required")
	}
	if o.Dataset == "" {
		o.Dataset = "production"
	}
	if o.APIVersion == "" {
		o.APIVersion = "2024-01-01"
	}
	if o.RPS <= 0 {
		o.RPS = 10
	}
	base := o.BaseURL
	if base == "" {
		host := "api.sanity.io"
		// authenticated reads bypass the CDN anyway
		if o.UseCDN && o.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", o.ProjectID, host)
	}
	return &Client{
		base: fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimRight(base, "/"), strings.TrimPrefix(o.APIVersion, "v"), o.Dataset),
		hc:   &http.Client{Timeout: 20 * time.Second},
		tok:  o.Token,
		rl:   rate.NewLimiter(rate.Limit(o.RPS), o.RPS),
	}, nil
}

// Documents returns the published documents of kind in editor order.
func (c *Client) Documents(ctx context.Context, kind string) ([]domain.Document, error) {
	q, ok := queries[kind]
	if !ok {
		return nil, fmt.Errorf("sanity: unknown document kind %q", kind)
	}
	var raw []json.RawMessage
	if err := c.query(ctx, kind, q, &raw); err != nil {
		return nil, fmt.Errorf("sanity: query %s: %w", kind, err)
	}
	out := make([]domain.Document, 0, len(raw))
	for i, body := range raw {
		if len(body) == 0 || string(body) == "null" {
			continue
		}
		var head struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(body, &head); err != nil {
			return nil, fmt.Errorf("sanity: decode %s[%d]: %w", kind, i, err)
		}
		out = append(out, domain.Document{ID: head.ID, Position: i, Body: body})
	}
	return out, nil
}

// ---- Internals ----

type envelope struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

func (c *Client) query(ctx context.Context, kind, groq string, out any) error {
	u := c.base + "?" + url.Values{"query": {groq}}.Encode()
	var env envelope
	if err := c.get(ctx, kind, u, &env); err != nil {
		return err
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	return json.Unmarshal(env.Result, out)
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, kind, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if c.tok != "" {
			req.Header.Set("Authorization", "Bearer "+c.tok)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "villa-site/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveCMS(kind, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveCMS(kind, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return domain.ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return domain.ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			// query syntax errors come back as 400 with a JSON description
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no attempt succeeded")
	}
	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns 200ms, 400ms, 800ms... plus up to 50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
