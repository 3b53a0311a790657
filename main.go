package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"pricescan/internal/api"
	"pricescan/internal/cache"
	"pricescan/internal/config"
	"pricescan/internal/db"
	"pricescan/internal/ebay"
	"pricescan/internal/logger"
)

var version = "dev"

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	flag.Parse()

	logger.Banner(version)

	cfg := config.Load()
	if !cfg.HasCredentials() {
		logger.Warn("Config", "eBay credentials not set, serving mock data")
	}
	if cfg.MockMode {
		logger.Info("Config", "Mock mode enabled")
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	if removed := database.CleanupSearchCache(24 * time.Hour); removed > 0 {
		logger.Info("DB", fmt.Sprintf("Removed %d stale cache entries", removed))
	}

	// Redis supersedes the SQLite search cache when configured.
	var searchCache api.SearchCache = database
	if cfg.Redis.Host != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.CacheTTL)
		if err != nil {
			logger.Warn("Cache", fmt.Sprintf("Redis unavailable, using SQLite cache: %v", err))
		} else {
			defer redisCache.Close()
			searchCache = redisCache
			logger.Success("Cache", fmt.Sprintf("Redis connected at %s:%s", cfg.Redis.Host, cfg.Redis.Port))
		}
	}

	client := ebay.NewClient(cfg.EbayClientID, cfg.EbayClientSecret, cfg.EbayEnvironment)
	client.SetSearchLimit(cfg.ListingLimit)
	srv := api.NewServer(cfg, client, database, searchCache)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}
