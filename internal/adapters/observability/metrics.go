package observability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"villa_site/internal/domain"
)

const ns = "villa"

var (
	// Page traffic, labelled by chi route pattern.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total", Help: "HTTP requests by route and status."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Help: "HTTP request duration.", Buckets: prometheus.DefBuckets},
		[]string{"route", "method"},
	)

	// CMS queries, one series per document kind.
	CMSRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: ns, Subsystem: "cms", Name: "requests_total", Help: "CMS query attempts by kind and outcome."},
		[]string{"kind", "outcome"}, // outcome: ok|retry|unauthorized|not_found|transport|error
	)
	CMSLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: ns, Subsystem: "cms", Name: "request_duration_seconds", Help: "CMS query attempt duration.", Buckets: prometheus.DefBuckets},
		[]string{"kind"},
	)

	ContentCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: ns, Subsystem: "content_cache", Name: "events_total", Help: "Content cache events by backend and kind."},
		[]string{"backend", "kind", "event"}, // event: hit|miss|set|del
	)

	LiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: ns, Subsystem: "live", Name: "sessions", Help: "Open live widget sessions."},
	)
	LiveEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: ns, Subsystem: "live", Name: "events_total", Help: "Widget events handled by live sessions."},
		[]string{"widget", "action"},
	)

	SyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: ns, Subsystem: "sync", Name: "runs_total", Help: "Content sync runs by kind and result."},
		[]string{"kind", "result"}, // result: ok|auth|error
	)
	SyncedDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: ns, Subsystem: "sync", Name: "documents_total", Help: "Documents mirrored by content sync."},
		[]string{"kind"},
	)
)

// Serve exposes reg on a side listener. An empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		HTTPRequests, HTTPLatency,
		CMSRequests, CMSLatency,
		ContentCache,
		LiveSessions, LiveEvents,
		SyncRuns, SyncedDocuments,
	)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveCMS records one query attempt. Status 0 means the request never got
// a response.
func ObserveCMS(kind string, status int, dur time.Duration) {
	CMSRequests.WithLabelValues(kind, cmsOutcome(status)).Inc()
	CMSLatency.WithLabelValues(kind).Observe(dur.Seconds())
}

func cmsOutcome(status int) string {
	switch {
	case status == 0:
		return "transport"
	case status == http.StatusOK:
		return "ok"
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "unauthorized"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusTooManyRequests || status >= 500:
		return "retry"
	}
	return "error"
}

// ObserveCache counts a cache event against the document kind behind key
// ("content:room" counts as "room").
func ObserveCache(backend, key, event string) {
	ContentCache.WithLabelValues(backend, strings.TrimPrefix(key, "content:"), event).Inc()
}

func ObserveLiveEvent(widget, action string) {
	LiveEvents.WithLabelValues(widget, action).Inc()
}

// ObserveSync records the result of mirroring one kind.
func ObserveSync(kind string, n int, err error) {
	switch {
	case err == nil:
		SyncRuns.WithLabelValues(kind, "ok").Inc()
		SyncedDocuments.WithLabelValues(kind).Add(float64(n))
	case errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden):
		SyncRuns.WithLabelValues(kind, "auth").Inc()
	default:
		SyncRuns.WithLabelValues(kind, "error").Inc()
	}
}
