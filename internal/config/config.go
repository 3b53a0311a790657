package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application settings loaded from environment variables.
// Missing eBay credentials are a valid state: the service falls back to
// deterministic mock data instead of refusing to start.
type Config struct {
	EbayClientID     string
	EbayClientSecret string
	EbayEnvironment  string // "production" or "sandbox"

	DefaultMarketplace string
	ListingLimit       int
	MockMode           bool

	CacheTTL time.Duration

	Redis RedisConfig

	SitemapBaseURL string
}

// RedisConfig holds the optional Redis search-cache connection settings.
// An empty Host disables Redis and the SQLite cache is used instead.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		EbayClientID:     getEnv("EBAY_CLIENT_ID", ""),
		EbayClientSecret: getEnv("EBAY_CLIENT_SECRET", ""),
		EbayEnvironment:  getEnv("EBAY_ENVIRONMENT", "production"),

		DefaultMarketplace: getEnv("DEFAULT_MARKETPLACE", "GB"),
		ListingLimit:       getEnvInt("LISTING_LIMIT", 50),
		MockMode:           getEnvBool("MOCK_MODE", false),

		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_MINUTES", 15)) * time.Minute,

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},

		SitemapBaseURL: getEnv("SITEMAP_BASE_URL", "https://pricescan.example.com"),
	}
}

// HasCredentials reports whether both eBay client credentials are set.
func (c *Config) HasCredentials() bool {
	return c.EbayClientID != "" && c.EbayClientSecret != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
