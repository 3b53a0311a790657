package engine

// Listing is one normalized marketplace item. Immutable once constructed:
// the normalizer builds it in full and nothing mutates it afterwards.
type Listing struct {
	Title       string  `json:"title"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"` // 0 means "unparsed", excluded from stats
	Currency    string  `json:"currency"`
	Condition   string  `json:"condition"`
	SoldDate    string  `json:"soldDate,omitempty"`    // display form, e.g. "Jan 15, 2026"
	SoldDateRaw string  `json:"soldDateRaw,omitempty"` // ISO form, e.g. "2026-01-15"
	URL         string  `json:"url"`
}

// PriceStatistics summarizes the prices of a listing set.
// Count covers only listings with Price > 0.
type PriceStatistics struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Count   int     `json:"count"`
}

// PriceHistoryPoint is the per-day aggregate over sold listings.
type PriceHistoryPoint struct {
	Date     string  `json:"date"` // ISO date, day granularity
	AvgPrice float64 `json:"avgPrice"`
	Count    int     `json:"count"`
}
