package infra

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries everything read from the environment at startup. Handlers
// never look at the environment themselves; they get this struct through fx.
type Config struct {
	PostgresURL        string
	Port               string
	SeatGeekClientID   string
	GoogleMapsAPIKey   string
	EventsDefaultRange string
	UpstreamTimeout    time.Duration
}

func LoadConfig(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading environment directly")
	}

	cfg := &Config{
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		Port:               getEnv("PORT", "8080"),
		SeatGeekClientID:   os.Getenv("SEATGEEK_CLIENT_ID"),
		GoogleMapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		EventsDefaultRange: getEnv("SEATGEEK_DEFAULT_RANGE", "50mi"),
		UpstreamTimeout:    10 * time.Second,
	}

	if timeout := os.Getenv("UPSTREAM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.UpstreamTimeout = d
		} else {
			log.Warn("invalid UPSTREAM_TIMEOUT, keeping default", zap.String("value", timeout))
		}
	}

	if cfg.SeatGeekClientID == "" {
		log.Warn("SEATGEEK_CLIENT_ID is not set, events endpoint will fail")
	}
	if cfg.GoogleMapsAPIKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY is not set, activity creation will fail")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
