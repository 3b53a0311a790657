package api

import (
	"encoding/json"
	"net/http"
	"time"

	"pricescan/internal/config"
	"pricescan/internal/db"
	"pricescan/internal/ebay"
	"pricescan/internal/engine"
)

// SearchCache stores normalized listings keyed by query+marketplace+
// condition+kind. Implemented by the SQLite layer and the optional Redis one.
type SearchCache interface {
	GetSearch(key string, ttl time.Duration) ([]engine.Listing, bool)
	SetSearch(key string, listings []engine.Listing)
}

// Server is the HTTP API server that connects the eBay client, the
// aggregation engine, and the persistence layer.
type Server struct {
	cfg   *config.Config
	ebay  *ebay.Client
	db    *db.DB
	cache SearchCache
	board ResultBoard
}

// NewServer creates a Server. database and searchCache may be nil; caching
// and history logging are then skipped.
func NewServer(cfg *config.Config, client *ebay.Client, database *db.DB, searchCache SearchCache) *Server {
	return &Server{
		cfg:   cfg,
		ebay:  client,
		db:    database,
		cache: searchCache,
	}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/search/active", s.handleSearchActive)
	mux.HandleFunc("GET /api/search/latest", s.handleSearchLatest)
	mux.HandleFunc("GET /api/searches/recent", s.handleRecentSearches)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/auth/test", s.handleAuthTest)
	mux.HandleFunc("GET /api/marketplaces", s.handleMarketplaces)
	mux.HandleFunc("GET /api/locales", s.handleLocales)
	mux.HandleFunc("GET /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/prefs", s.handleGetPrefs)
	mux.HandleFunc("POST /api/prefs", s.handleSetPrefs)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/categories/{slug}", s.handleCategoryBySlug)
	mux.HandleFunc("GET /api/brands", s.handleBrands)
	mux.HandleFunc("GET /api/brands/{slug}", s.handleBrandBySlug)
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
