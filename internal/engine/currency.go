package engine

// usdRates holds each currency's value in USD. The table is fixed: display
// conversion needs ballpark accuracy, not a live feed.
var usdRates = map[string]float64{
	"USD": 1.0,
	"GBP": 1.27,
	"EUR": 1.08,
	"CAD": 0.73,
	"AUD": 0.65,
	"BRL": 0.20,
}

// Convert converts an amount between currencies for display. Identity when
// the codes match; unknown codes are treated as rate 1 (USD-equivalent)
// rather than erroring. Conversion never alters stored listing prices or
// statistics, which stay denominated in their original currency.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return round2(amount * rate(from) / rate(to))
}

func rate(currency string) float64 {
	if r, ok := usdRates[currency]; ok {
		return r
	}
	return 1.0
}
