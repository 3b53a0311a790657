package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"pricescan/internal/ebay"
	"pricescan/internal/engine"
	"pricescan/internal/locale"
	"pricescan/internal/logger"
)

// Search result provenance values.
const (
	SourceLive  = "live"
	SourceMock  = "mock"
	SourceCache = "cache"
)

// SearchResponse is the API's aggregation result shape.
type SearchResponse struct {
	Query          string                     `json:"query"`
	Marketplace    string                     `json:"marketplace"`
	Listings       []engine.Listing           `json:"listings"`
	ActiveListings []engine.Listing           `json:"activeListings,omitempty"`
	Stats          engine.PriceStatistics     `json:"stats"`
	ActiveStats    *engine.PriceStatistics    `json:"activeStats,omitempty"`
	History        []engine.PriceHistoryPoint `json:"history,omitempty"`
	Source         string                     `json:"source"`
	Message        string                     `json:"message,omitempty"`
	Error          string                     `json:"error,omitempty"`
}

// handleSearch is the main aggregation endpoint: sold listings, statistics,
// and price history for a query. Upstream failures degrade to an empty
// result with an error message, not an HTTP error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, `query parameter "q" is required`)
		return
	}
	mp := s.marketplaceParam(r)
	condition := r.URL.Query().Get("condition")
	if condition == "" {
		condition = "all"
	}
	mock := parseBoolParam(r, "mock") || s.cfg.MockMode || !s.ebay.HasCredentials()
	includeActive := parseBoolParam(r, "include_active")

	seq := s.board.Begin()
	resp := s.runSearch(r.Context(), q, mp, condition, mock, includeActive)
	s.board.Publish(seq, resp)

	writeJSON(w, resp)
}

// handleSearchActive returns currently-for-sale listings with statistics
// but no price history (active listings carry no sold dates).
func (s *Server) handleSearchActive(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, `query parameter "q" is required`)
		return
	}
	mp := s.marketplaceParam(r)
	condition := r.URL.Query().Get("condition")
	if condition == "" {
		condition = "all"
	}
	mock := parseBoolParam(r, "mock") || s.cfg.MockMode || !s.ebay.HasCredentials()

	resp := &SearchResponse{Query: q, Marketplace: mp.ID, Listings: []engine.Listing{}}
	if mock {
		resp.Source = SourceMock
		resp.Listings = engine.NormalizeAll(ebay.MockListings(q, mp.ID), q)
		resp.Message = locale.ForLocale(mp.Locale).MockNotice
	} else {
		listings, source, err := s.fetchWithCache(r.Context(), q, mp.ID, condition, false)
		resp.Source = source
		if err != nil {
			resp.Error = err.Error()
			logger.Warn("API", fmt.Sprintf("active search %q failed: %v", q, err))
		} else {
			resp.Listings = listings
		}
	}
	resp.Stats = engine.Aggregate(resp.Listings)
	if len(resp.Listings) == 0 && resp.Error == "" {
		resp.Message = locale.ForLocale(mp.Locale).NoResults
	}
	writeJSON(w, resp)
}

// handleSearchLatest serves the latest-query-wins result board.
func (s *Server) handleSearchLatest(w http.ResponseWriter, r *http.Request) {
	res, ok := s.board.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, "no search has completed yet")
		return
	}
	writeJSON(w, res)
}

// runSearch executes the full pipeline for one query: fetch (live, cached,
// or mock) → normalize → aggregate → history.
func (s *Server) runSearch(ctx context.Context, q string, mp locale.Marketplace, condition string, mock, includeActive bool) *SearchResponse {
	resp := &SearchResponse{Query: q, Marketplace: mp.ID, Listings: []engine.Listing{}}
	msgs := locale.ForLocale(mp.Locale)

	if mock {
		resp.Source = SourceMock
		resp.Listings = engine.NormalizeAll(ebay.MockListings(q, mp.ID), q)
		resp.Message = msgs.MockNotice
		if includeActive {
			resp.ActiveListings = resp.Listings
			stats := engine.Aggregate(resp.ActiveListings)
			resp.ActiveStats = &stats
		}
	} else {
		sold, soldSource, soldErr := s.fetchSoldAndActive(ctx, q, mp.ID, condition, includeActive, resp)
		resp.Source = soldSource
		if soldErr != nil {
			resp.Error = soldErr.Error()
			logger.Warn("API", fmt.Sprintf("search %q failed: %v", q, soldErr))
		} else {
			resp.Listings = sold
			if s.db != nil && soldSource == SourceLive {
				s.db.InsertSearch(q, mp.ID, soldSource, len(sold), engine.Aggregate(sold).Average)
			}
		}
	}

	resp.Stats = engine.Aggregate(resp.Listings)
	resp.History = engine.AggregateHistory(resp.Listings)
	if len(resp.Listings) == 0 && resp.Error == "" {
		resp.Message = msgs.NoResults
	}
	return resp
}

// fetchSoldAndActive fetches sold listings, and active listings concurrently
// when requested. Both are pure reads with no ordering dependency, so they
// share the errgroup once a token is held.
func (s *Server) fetchSoldAndActive(ctx context.Context, q, marketplace, condition string, includeActive bool, resp *SearchResponse) ([]engine.Listing, string, error) {
	if !includeActive {
		return s.fetchWithCache(ctx, q, marketplace, condition, true)
	}

	var (
		sold       []engine.Listing
		soldSource string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sold, soldSource, err = s.fetchWithCache(gctx, q, marketplace, condition, true)
		return err
	})
	g.Go(func() error {
		active, _, err := s.fetchWithCache(gctx, q, marketplace, condition, false)
		if err != nil {
			// Active listings are supplementary; their failure never
			// fails the sold search.
			logger.Warn("API", fmt.Sprintf("active fetch %q failed: %v", q, err))
			return nil
		}
		resp.ActiveListings = active
		stats := engine.Aggregate(active)
		resp.ActiveStats = &stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, soldSourceOrLive(soldSource), err
	}
	return sold, soldSource, nil
}

func soldSourceOrLive(source string) string {
	if source == "" {
		return SourceLive
	}
	return source
}

// fetchWithCache consults the search cache before hitting the Browse API,
// and stores fresh results on a miss.
func (s *Server) fetchWithCache(ctx context.Context, q, marketplace, condition string, sold bool) ([]engine.Listing, string, error) {
	kind := "active"
	if sold {
		kind = "sold"
	}
	key := fmt.Sprintf("%s|%s|%s|%s", q, marketplace, condition, kind)

	if s.cache != nil {
		if listings, ok := s.cache.GetSearch(key, s.cfg.CacheTTL); ok {
			return listings, SourceCache, nil
		}
	}

	var (
		items []ebay.ItemSummary
		err   error
	)
	if sold {
		items, err = s.ebay.SearchSold(ctx, q, marketplace, condition)
	} else {
		items, err = s.ebay.SearchActive(ctx, q, marketplace, condition)
	}
	if err != nil {
		return nil, SourceLive, err
	}

	listings := engine.NormalizeAll(items, q)
	if s.cache != nil {
		s.cache.SetSearch(key, listings)
	}
	return listings, SourceLive, nil
}

// marketplaceParam resolves the marketplace query parameter, falling back
// to the configured default and then to GB for unrecognized codes.
func (s *Server) marketplaceParam(r *http.Request) locale.Marketplace {
	code := r.URL.Query().Get("marketplace")
	if code == "" {
		code = s.cfg.DefaultMarketplace
	}
	return locale.MarketplaceByID(code)
}

func parseBoolParam(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
