package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	ContentSource string // cms|mysql
	MySQLDSN      string

	CacheBackend string // none|memory|redis
	CacheTTL     time.Duration
	RedisAddr    string
	RedisDB      int
	RedisPass    string

	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string
	SanityUseCDN     bool
	SanityRPS        int

	SyncWorkers int

	Currency        string
	WhatsAppMessage string

	LiveAllowedOrigins []string
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Real environment variables win over .env.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		ContentSource: strings.ToLower(env("CONTENT_SOURCE", "cms")),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/villa?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),

		CacheBackend: strings.ToLower(env("CACHE_BACKEND", "none")),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),

		SanityProjectID:  env("SANITY_PROJECT_ID", ""),
		SanityDataset:    env("SANITY_DATASET", "production"),
		SanityAPIVersion: env("SANITY_API_VERSION", "2024-01-01"),
		SanityToken:      env("SANITY_TOKEN", ""),
		SanityUseCDN:     boolEnv("SANITY_USE_CDN", true),
		SanityRPS:        atoi("SANITY_RPS", 10),

		SyncWorkers: atoi("SYNC_WORKERS", 4),

		Currency:        env("SITE_CURRENCY", "USD"),
		WhatsAppMessage: env("WHATSAPP_MESSAGE", "Hello! I'm interested in booking..."),

		LiveAllowedOrigins: list(os.Getenv("LIVE_ALLOWED_ORIGINS")),
	}
	if c.SanityProjectID == "" && c.ContentSource == "cms" {
		log.Warn().Msg("SANITY_PROJECT_ID is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func list(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
