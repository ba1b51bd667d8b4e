package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"villa_site/internal/adapters/observability"
	redisad "villa_site/internal/adapters/redis"
	"villa_site/internal/adapters/sanity"
	"villa_site/internal/app"
	"villa_site/internal/domain"
	"villa_site/internal/shared"
	mysqlrepo "villa_site/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "contentsync")

	log.Info().
		Str("project", cfg.SanityProjectID).
		Str("dataset", cfg.SanityDataset).
		Int("workers", cfg.SyncWorkers).
		Msg("content sync starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := sanity.New(sanity.Options{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		UseCDN:     false, // always read fresh for the mirror
		RPS:        cfg.SanityRPS,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize CMS client")
	}

	var cache domain.Cache
	if cfg.CacheBackend == "redis" {
		// The site's in-memory cache lives in another process; only a shared
		// Redis can be evicted from here.
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	syncer := app.NewSyncService(client, repo, cache)
	workers := cfg.SyncWorkers
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)

	for _, kind := range domain.AllKinds {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(kind string) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := syncer.SyncKind(ctx, kind)
			if err != nil {
				failed.Add(1)
				log.Warn().Str("kind", kind).Err(err).Msg("sync failed")
				return
			}
			log.Info().Str("kind", kind).Int("docs", n).Msg("sync ok")
		}(kind)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int32("failed", n).Msg("content sync finished with errors")
	}
	log.Info().Msg("content sync completed")
}
