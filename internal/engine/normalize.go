package engine

import (
	"net/url"
	"time"

	"pricescan/internal/ebay"
)

// conditionNames is the closed code→label table for upstream condition ids.
// Codes outside the table resolve to "Unknown", never an error.
var conditionNames = map[string]string{
	"3000": "Used",
	"3001": "Used - Very Good",
	"3002": "Used - Good",
	"3003": "Used - Acceptable",
	"3004": "New",
	"3005": "New - Other",
	"3007": "Refurbished",
}

const conditionUnknown = "Unknown"

// FallbackCurrency is assumed when the source record omits one.
const FallbackCurrency = "USD"

// priceExtractor tries one field shape and reports whether it produced a value.
type priceExtractor func(ebay.ItemSummary) (float64, bool)

// priceExtractors are tried in priority order: listed price, current bid,
// then the raw sold-price number older responses carried.
var priceExtractors = []priceExtractor{
	func(it ebay.ItemSummary) (float64, bool) {
		if it.Price != nil && it.Price.Value > 0 {
			return float64(it.Price.Value), true
		}
		return 0, false
	},
	func(it ebay.ItemSummary) (float64, bool) {
		if it.CurrentBidPrice != nil && it.CurrentBidPrice.Value > 0 {
			return float64(it.CurrentBidPrice.Value), true
		}
		return 0, false
	},
	func(it ebay.ItemSummary) (float64, bool) {
		if it.SoldPrice > 0 {
			return float64(it.SoldPrice), true
		}
		return 0, false
	},
}

// Normalize maps one raw item record into the canonical Listing shape.
// Pure: the same record and query always produce the same Listing.
// Records with no sold date keep both date fields empty, in sold and
// active contexts alike.
func Normalize(item ebay.ItemSummary, query string) Listing {
	l := Listing{
		Title:     item.Title,
		Currency:  FallbackCurrency,
		Condition: conditionLabel(item),
		URL:       itemURL(item, query),
	}

	for _, extract := range priceExtractors {
		if v, ok := extract(item); ok {
			l.Price = v
			break
		}
	}

	if item.Price != nil && item.Price.Currency != "" {
		l.Currency = item.Price.Currency
	} else if item.CurrentBidPrice != nil && item.CurrentBidPrice.Currency != "" {
		l.Currency = item.CurrentBidPrice.Currency
	}

	if item.Image != nil && item.Image.ImageURL != "" {
		l.Image = item.Image.ImageURL
	} else if len(item.ThumbnailImages) > 0 {
		l.Image = item.ThumbnailImages[0].ImageURL
	}

	if item.ItemSoldDate != "" {
		if t, err := time.Parse("2006-01-02", item.ItemSoldDate); err == nil {
			l.SoldDateRaw = item.ItemSoldDate
			l.SoldDate = t.Format("Jan 2, 2006")
		}
	}

	return l
}

// NormalizeAll maps a batch of raw records, preserving order.
func NormalizeAll(items []ebay.ItemSummary, query string) []Listing {
	listings := make([]Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, Normalize(item, query))
	}
	return listings
}

func conditionLabel(item ebay.ItemSummary) string {
	if item.ConditionID != "" {
		if name, ok := conditionNames[item.ConditionID]; ok {
			return name
		}
		return conditionUnknown
	}
	if item.Condition != "" {
		return item.Condition
	}
	return conditionUnknown
}

func itemURL(item ebay.ItemSummary, query string) string {
	if item.ItemWebURL != "" {
		return item.ItemWebURL
	}
	return "https://www.ebay.com/sch/i.html?_nkw=" + url.QueryEscape(query)
}
