package engine

import (
	"math"
	"sort"
)

// historyDays caps the price-history series at the most recent distinct dates.
const historyDays = 30

// roundEpsilon absorbs float64 representation error so decimal values that
// sit exactly on the half boundary (e.g. 10.005) still round up.
const roundEpsilon = 1e-9

// round2 rounds to 2 decimal places, half up. Rounding mode is fixed here
// so average and median agree across the codebase.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5+roundEpsilon) / 100
}

// roundWhole rounds to the nearest whole unit, half up.
func roundWhole(v float64) float64 {
	return math.Floor(v + 0.5 + roundEpsilon)
}

// Aggregate computes summary statistics over listings with Price > 0.
// An empty filtered set yields the all-zero record with Count 0; that is a
// defined terminal case, not a failure.
func Aggregate(listings []Listing) PriceStatistics {
	prices := make([]float64, 0, len(listings))
	for _, l := range listings {
		if l.Price > 0 {
			prices = append(prices, l.Price)
		}
	}
	if len(prices) == 0 {
		return PriceStatistics{}
	}

	sort.Float64s(prices)
	count := len(prices)

	var sum float64
	for _, p := range prices {
		sum += p
	}

	var median float64
	if count%2 == 0 {
		median = round2((prices[count/2-1] + prices[count/2]) / 2)
	} else {
		median = prices[count/2]
	}

	return PriceStatistics{
		Min:     prices[0],
		Max:     prices[count-1],
		Average: round2(sum / float64(count)),
		Median:  median,
		Count:   count,
	}
}

// AggregateHistory groups sold listings by raw sold date and computes the
// per-day mean price (rounded to the nearest whole unit) and count. The
// series is sorted ascending and truncated to the most recent 30 distinct
// dates. Listings without a sold date or with an unparsed price are skipped.
func AggregateHistory(listings []Listing) []PriceHistoryPoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, l := range listings {
		if l.SoldDateRaw == "" || l.Price <= 0 {
			continue
		}
		b := buckets[l.SoldDateRaw]
		if b == nil {
			b = &bucket{}
			buckets[l.SoldDateRaw] = b
		}
		b.sum += l.Price
		b.count++
	}

	points := make([]PriceHistoryPoint, 0, len(buckets))
	for date, b := range buckets {
		points = append(points, PriceHistoryPoint{
			Date:     date,
			AvgPrice: roundWhole(b.sum / float64(b.count)),
			Count:    b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	if len(points) > historyDays {
		points = points[len(points)-historyDays:]
	}
	return points
}
