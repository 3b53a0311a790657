package ebay

import "fmt"

// mockCurrencies gives each marketplace its native currency for synthetic data.
var mockCurrencies = map[string]string{
	"US": "USD",
	"GB": "GBP",
	"CA": "CAD",
	"AU": "AUD",
	"PT": "BRL",
	"DE": "EUR",
	"FR": "EUR",
	"ES": "EUR",
	"IT": "EUR",
}

// MockListings returns a small deterministic dataset shaped like real Browse
// API records, so the normalize→aggregate pipeline can be exercised and
// demoed without live credentials. This is an explicit code path: callers
// surface source="mock" so the substitution is never silent.
func MockListings(query, marketplace string) []ItemSummary {
	currency := mockCurrencies[marketplace]
	if currency == "" {
		currency = "USD"
	}

	return []ItemSummary{
		{
			ItemID:       "v1|100000000001|0",
			Title:        fmt.Sprintf("Test Product: %s", query),
			Price:        &Money{Value: 25.99, Currency: currency},
			ConditionID:  "3000",
			ItemWebURL:   "https://www.ebay.com/itm/test",
			ItemSoldDate: "2026-01-15",
		},
		{
			ItemID:       "v1|100000000002|0",
			Title:        fmt.Sprintf("Another %s - Used", query),
			Price:        &Money{Value: 32.50, Currency: currency},
			ConditionID:  "3002",
			ItemWebURL:   "https://www.ebay.com/itm/test2",
			ItemSoldDate: "2026-01-10",
		},
		{
			ItemID:       "v1|100000000003|0",
			Title:        fmt.Sprintf("%s - Brand New", query),
			Price:        &Money{Value: 45.00, Currency: currency},
			ConditionID:  "3004",
			ItemWebURL:   "https://www.ebay.com/itm/test3",
			ItemSoldDate: "2026-01-05",
		},
	}
}
