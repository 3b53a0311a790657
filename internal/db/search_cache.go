package db

import (
	"encoding/json"
	"time"

	"pricescan/internal/engine"
)

// GetSearch retrieves cached normalized listings for a cache key.
// Returns nil, false if not cached or if the entry is older than ttl.
func (d *DB) GetSearch(key string, ttl time.Duration) ([]engine.Listing, bool) {
	var payload, updatedAt string
	err := d.sql.QueryRow(
		"SELECT listings, updated_at FROM search_cache WHERE cache_key=?", key,
	).Scan(&payload, &updatedAt)
	if err != nil {
		return nil, false
	}

	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil || time.Since(t) > ttl {
		return nil, false
	}

	var listings []engine.Listing
	if err := json.Unmarshal([]byte(payload), &listings); err != nil {
		return nil, false
	}
	return listings, true
}

// SetSearch stores normalized listings under a cache key, replacing any
// previous entry. Failures are swallowed: the cache is an optimization,
// never a correctness dependency.
func (d *DB) SetSearch(key string, listings []engine.Listing) {
	payload, err := json.Marshal(listings)
	if err != nil {
		return
	}
	d.sql.Exec(
		"INSERT OR REPLACE INTO search_cache (cache_key, listings, updated_at) VALUES (?,?,?)",
		key, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
}

// CleanupSearchCache removes cache entries older than the given age.
// Called on startup to keep the SQLite file from growing without bound.
func (d *DB) CleanupSearchCache(maxAge time.Duration) int64 {
	cutoff := time.Now().Add(-maxAge).UTC().Format(time.RFC3339)
	res, err := d.sql.Exec("DELETE FROM search_cache WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
