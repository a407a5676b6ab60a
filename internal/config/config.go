package config

import (
	"fmt"
	"os"
	"time"

	"auction-client/utils"

	"github.com/joho/godotenv"
)

// Config holds the client settings
type Config struct {
	// APIBaseURL is the absolute root every API path is resolved against
	APIBaseURL string
	LogLevel   string

	// CSRFToken and SessionID seed the cookie jar when the session was
	// established outside this process (the login page is not ours).
	CSRFToken string
	SessionID string

	// HTTPTimeout of zero means no client-side timeout
	HTTPTimeout time.Duration

	// MetricsAddr serves /metrics when non-empty
	MetricsAddr string
}

const defaultAPIBaseURL = "http://localhost:8000/api"

// Load reads an optional .env file and then the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	} else if err != nil {
		utils.Debug("config: no .env file, using environment only", nil)
	}

	cfg := &Config{
		APIBaseURL:  getEnvOrDefault("AUCTION_API_BASE_URL", defaultAPIBaseURL),
		LogLevel:    getEnvOrDefault("AUCTION_LOG_LEVEL", "info"),
		CSRFToken:   os.Getenv("AUCTION_CSRF_TOKEN"),
		SessionID:   os.Getenv("AUCTION_SESSION_ID"),
		MetricsAddr: os.Getenv("AUCTION_METRICS_ADDR"),
	}

	if raw := os.Getenv("AUCTION_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: AUCTION_HTTP_TIMEOUT %q: %w", raw, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("config: AUCTION_HTTP_TIMEOUT must not be negative")
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
