package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pricescan/internal/ebay"
	"pricescan/internal/engine"
	"pricescan/internal/locale"
	"pricescan/internal/seo"
)

// handleStatus reports credential presence and the data source searches
// will use. Credential values never leave the server, only set/MISSING.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	source := SourceLive
	if s.cfg.MockMode || !s.ebay.HasCredentials() {
		source = SourceMock
	}
	body := map[string]interface{}{
		"status": "ok",
		"credentials": map[string]string{
			"EBAY_CLIENT_ID":     setOrMissing(s.cfg.EbayClientID),
			"EBAY_CLIENT_SECRET": setOrMissing(s.cfg.EbayClientSecret),
			"EBAY_ENVIRONMENT":   s.cfg.EbayEnvironment,
		},
		"mockMode": s.cfg.MockMode,
		"source":   source,
	}
	// Reachability probe costs a network round trip, so it is opt-in.
	if parseBoolParam(r, "ping") {
		body["upstreamReachable"] = s.ebay.HealthCheck(r.Context())
	}
	writeJSON(w, body)
}

func setOrMissing(v string) string {
	if v != "" {
		return "set"
	}
	return "MISSING"
}

// handleAuthTest performs an explicit token exchange. This is the one
// endpoint where missing credentials are a hard error rather than a mock
// fallback: its whole purpose is diagnosing the live credential path.
func (s *Server) handleAuthTest(w http.ResponseWriter, r *http.Request) {
	token, err := s.ebay.AccessToken(r.Context())
	if err != nil {
		var credErr *ebay.CredentialError
		var authErr *ebay.AuthServiceError
		switch {
		case errors.As(err, &credErr):
			writeJSONStatus(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   "Missing credentials",
				"details": credErr.Error(),
			})
		case errors.As(err, &authErr):
			writeJSONStatus(w, http.StatusInternalServerError, map[string]interface{}{
				"oauthStatus": authErr.Status,
				"oauthError":  authErr.Body,
				"message":     "OAuth failed",
			})
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, map[string]interface{}{
		"oauthStatus": "success",
		"tokenLength": len(token),
	})
}

func (s *Server) handleMarketplaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, locale.Marketplaces)
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	out := make([]locale.Translations, 0, len(locale.Locales()))
	for _, l := range locale.Locales() {
		out = append(out, locale.ForLocale(l))
	}
	writeJSON(w, out)
}

// handleConvert converts an amount between currencies for display.
// The conversion never touches stored prices or statistics.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	amountStr := r.URL.Query().Get("amount")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, `query parameter "amount" must be a number`)
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, `query parameters "from" and "to" are required`)
		return
	}

	converted := engine.Convert(amount, from, to)
	writeJSON(w, map[string]interface{}{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"converted": converted,
		"formatted": locale.FormatPrice(converted, to),
	})
}

func (s *Server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, []struct{}{})
		return
	}
	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	records := s.db.RecentSearches(limit)
	if records == nil {
		writeJSON(w, []struct{}{})
		return
	}
	writeJSON(w, records)
}

// prefsPayload is the stored user preference set.
type prefsPayload struct {
	Marketplace string `json:"marketplace"`
	Locale      string `json:"locale"`
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	p := prefsPayload{Marketplace: s.cfg.DefaultMarketplace, Locale: "en"}
	if s.db != nil {
		p.Marketplace = s.db.GetPref("marketplace", p.Marketplace)
		p.Locale = s.db.GetPref("locale", p.Locale)
	}
	writeJSON(w, p)
}

func (s *Server) handleSetPrefs(w http.ResponseWriter, r *http.Request) {
	var p prefsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "preferences storage unavailable")
		return
	}
	// Unrecognized codes are normalized through the same fallbacks the
	// search path uses, so stored prefs are always resolvable.
	if p.Marketplace != "" {
		s.db.SetPref("marketplace", locale.MarketplaceByID(p.Marketplace).ID)
	}
	if p.Locale != "" {
		s.db.SetPref("locale", locale.ForLocale(p.Locale).Locale)
	}
	s.handleGetPrefs(w, r)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, seo.Categories)
}

func (s *Server) handleCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	c, ok := seo.CategoryBySlug(r.PathValue("slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, c)
}

func (s *Server) handleBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, seo.Brands)
}

func (s *Server) handleBrandBySlug(w http.ResponseWriter, r *http.Request) {
	b, ok := seo.BrandBySlug(r.PathValue("slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	writeJSON(w, b)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write([]byte(seo.Sitemap(s.cfg.SitemapBaseURL)))
}

// writeJSONStatus writes a JSON body with an explicit status code.
func writeJSONStatus(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
