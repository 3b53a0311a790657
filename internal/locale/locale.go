// Package locale holds the marketplace and language tables the UI layer
// renders from, plus price formatting helpers.
package locale

import "fmt"

// Marketplace describes one supported eBay region.
type Marketplace struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// Marketplaces lists the supported regions. Order matters: the first entry
// is the default shown to new users.
var Marketplaces = []Marketplace{
	{ID: "GB", Name: "UK", Currency: "GBP", Locale: "en"},
	{ID: "US", Name: "US", Currency: "USD", Locale: "en"},
	{ID: "CA", Name: "Canada", Currency: "CAD", Locale: "en"},
	{ID: "AU", Name: "Australia", Currency: "AUD", Locale: "en"},
	{ID: "PT", Name: "Brasil", Currency: "BRL", Locale: "pt-BR"},
	{ID: "ES", Name: "Espana", Currency: "EUR", Locale: "es"},
	{ID: "FR", Name: "France", Currency: "EUR", Locale: "fr"},
	{ID: "IT", Name: "Italia", Currency: "EUR", Locale: "it"},
}

// MarketplaceByID resolves a region code, falling back to the default (GB)
// for unrecognized codes.
func MarketplaceByID(id string) Marketplace {
	for _, m := range Marketplaces {
		if m.ID == id {
			return m
		}
	}
	return Marketplaces[0]
}

// currencySymbols for display formatting. Unknown currencies render with
// their ISO code as prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"CAD": "C$",
	"AUD": "A$",
	"BRL": "R$",
}

// FormatPrice renders an amount with its currency symbol, e.g. "£12.34".
func FormatPrice(amount float64, currency string) string {
	if sym, ok := currencySymbols[currency]; ok {
		return fmt.Sprintf("%s%.2f", sym, amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}
