package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	RedisAddr string
	RedisDB   int
	RedisPass string

	HostawayBase      string
	HostawayAccountID string
	HostawayKey       string

	PlacesBase string
	PlacesKey  string

	PlacesCacheTTL time.Duration
	WarmWorkers    int
}

func Load() Config {
	// optional .env for local development; real deployments set the env directly
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		MetricsAddr:       env("METRICS_ADDR", ""),
		RedisAddr:         env("REDIS_ADDR", "localhost:6379"),
		RedisDB:           atoi("REDIS_DB", 0),
		RedisPass:         env("REDIS_PASSWORD", ""),
		HostawayBase:      env("HOSTAWAY_BASE_URL", "https://api.hostaway.com/v1"),
		HostawayAccountID: env("HOSTAWAY_ACCOUNT_ID", ""),
		HostawayKey:       env("HOSTAWAY_API_KEY", ""),
		PlacesBase:        env("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		PlacesKey:         env("GOOGLE_PLACES_API_KEY", ""),
		PlacesCacheTTL:    time.Duration(atoi("PLACES_CACHE_TTL_SECONDS", 86400)) * time.Second,
		WarmWorkers:       atoi("WARM_WORKERS", 4),
	}

	// Missing credentials degrade (sample data / not-configured responses)
	// rather than crash, so only warn here.
	if c.HostawayAccountID == "" || c.HostawayKey == "" {
		log.Warn().Msg("HOSTAWAY_ACCOUNT_ID/HOSTAWAY_API_KEY not set; serving sandbox sample reviews")
	}
	if c.PlacesKey == "" {
		log.Warn().Msg("GOOGLE_PLACES_API_KEY not set; google review lookups disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
