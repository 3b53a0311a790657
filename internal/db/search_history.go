package db

import (
	"time"
)

// SearchRecord is one logged search.
type SearchRecord struct {
	ID          int64   `json:"id"`
	Timestamp   string  `json:"timestamp"`
	Query       string  `json:"query"`
	Marketplace string  `json:"marketplace"`
	Source      string  `json:"source"`
	Count       int     `json:"count"`
	AvgPrice    float64 `json:"avgPrice"`
}

// InsertSearch logs a completed search and returns its row id.
func (d *DB) InsertSearch(query, marketplace, source string, count int, avgPrice float64) int64 {
	res, err := d.sql.Exec(
		"INSERT INTO search_history (timestamp, query, marketplace, source, count, avg_price) VALUES (?,?,?,?,?,?)",
		time.Now().UTC().Format(time.RFC3339), query, marketplace, source, count, avgPrice,
	)
	if err != nil {
		return 0
	}
	id, _ := res.LastInsertId()
	return id
}

// RecentSearches returns the most recent logged searches, newest first.
func (d *DB) RecentSearches(limit int) []SearchRecord {
	rows, err := d.sql.Query(
		"SELECT id, timestamp, query, marketplace, source, count, avg_price FROM search_history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []SearchRecord
	for rows.Next() {
		var r SearchRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Query, &r.Marketplace, &r.Source, &r.Count, &r.AvgPrice); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ClearSearchHistory removes all logged searches.
func (d *DB) ClearSearchHistory() {
	d.sql.Exec("DELETE FROM search_history")
}
