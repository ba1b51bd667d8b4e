package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "villa_site/internal/adapters/http_server"
	"villa_site/internal/adapters/memcache"
	"villa_site/internal/adapters/observability"
	redisad "villa_site/internal/adapters/redis"
	"villa_site/internal/adapters/sanity"
	"villa_site/internal/app"
	"villa_site/internal/domain"
	"villa_site/internal/live"
	"villa_site/internal/shared"
	mysqlrepo "villa_site/internal/storage/mysql"
	"villa_site/internal/view"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "web")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	src := contentSource(cfg)
	cache := contentCache(ctx, cfg)
	q := app.NewContentService(src, cache, cfg.CacheTTL)

	renderer, err := view.New(sanity.NewImageBuilder(cfg.SanityProjectID, cfg.SanityDataset), view.Options{
		Currency:        cfg.Currency,
		WhatsAppMessage: cfg.WhatsAppMessage,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("templates failed to load")
	}

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:    q,
		V:    renderer,
		Live: live.NewHandler(q, renderer, cfg.LiveAllowedOrigins),
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(sctx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("source", cfg.ContentSource).Str("cache", cfg.CacheBackend).Msg("site listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// contentSource reads straight from the CMS, or from the MySQL mirror the
// contentsync job maintains.
func contentSource(cfg shared.Config) domain.DocumentSource {
	switch cfg.ContentSource {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db)
	case "cms":
		c, err := sanity.New(sanity.Options{
			ProjectID:  cfg.SanityProjectID,
			Dataset:    cfg.SanityDataset,
			APIVersion: cfg.SanityAPIVersion,
			Token:      cfg.SanityToken,
			UseCDN:     cfg.SanityUseCDN,
			RPS:        cfg.SanityRPS,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize CMS client")
		}
		return c
	}
	log.Fatal().Str("source", cfg.ContentSource).Msg("CONTENT_SOURCE must be cms or mysql")
	return nil
}

func contentCache(ctx context.Context, cfg shared.Config) domain.Cache {
	switch cfg.CacheBackend {
	case "redis":
		c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := c.Ping(ctx); err != nil {
			// Cache failures are tolerated per request; start anyway.
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
		}
		return c
	case "memory":
		return memcache.New(cfg.CacheTTL)
	case "none", "":
		return memcache.Nop{}
	}
	log.Warn().Str("cache", cfg.CacheBackend).Msg("unknown CACHE_BACKEND, caching disabled")
	return memcache.Nop{}
}
