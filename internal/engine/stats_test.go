package engine

import (
	"math"
	"testing"
)

func listingsWithPrices(prices ...float64) []Listing {
	out := make([]Listing, len(prices))
	for i, p := range prices {
		out[i] = Listing{Title: "item", Price: p, Currency: "USD"}
	}
	return out
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	if got != (PriceStatistics{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero stats", got)
	}
}

func TestAggregate_AllUnparsedPrices(t *testing.T) {
	got := Aggregate(listingsWithPrices(0, 0, 0))
	if got != (PriceStatistics{}) {
		t.Errorf("Aggregate(all zero) = %+v, want zero stats", got)
	}
}

func TestAggregate_UnparsedExcludedFromCount(t *testing.T) {
	got := Aggregate(listingsWithPrices(0, 10, 0, 20))
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2 (zero prices excluded)", got.Count)
	}
	if got.Min != 10 || got.Max != 20 {
		t.Errorf("Min/Max = %v/%v, want 10/20", got.Min, got.Max)
	}
}

func TestAggregate_MedianEvenCount(t *testing.T) {
	got := Aggregate(listingsWithPrices(10, 20))
	if got.Median != 15.0 {
		t.Errorf("Median([10,20]) = %v, want 15", got.Median)
	}
}

func TestAggregate_MedianOddCount(t *testing.T) {
	got := Aggregate(listingsWithPrices(30, 10, 20))
	if got.Median != 20 {
		t.Errorf("Median([10,20,30]) = %v, want 20", got.Median)
	}
}

func TestAggregate_AverageRoundsHalfUp(t *testing.T) {
	got := Aggregate(listingsWithPrices(10.005, 10.005))
	if got.Average != 10.01 {
		t.Errorf("Average([10.005,10.005]) = %v, want 10.01 (half-up)", got.Average)
	}
}

func TestAggregate_BoundsProperty(t *testing.T) {
	cases := [][]float64{
		{1},
		{5, 5, 5},
		{1.99, 200.50, 34.12, 7},
		{10, 20, 30, 40, 50, 60},
	}
	for _, prices := range cases {
		s := Aggregate(listingsWithPrices(prices...))
		if s.Min > s.Median || s.Median > s.Max {
			t.Errorf("prices %v: want min <= median <= max, got %v/%v/%v", prices, s.Min, s.Median, s.Max)
		}
		if s.Min > s.Average || s.Average > s.Max {
			t.Errorf("prices %v: want min <= average <= max, got %v/%v/%v", prices, s.Min, s.Average, s.Max)
		}
	}
}

func TestAggregate_MockDataset(t *testing.T) {
	// The deterministic synthetic dataset: 25.99, 32.50, 45.00.
	got := Aggregate(listingsWithPrices(45.00, 25.99, 32.50))
	want := PriceStatistics{Min: 25.99, Max: 45.00, Average: 34.50, Median: 32.50, Count: 3}
	if got != want {
		t.Errorf("Aggregate(mock prices) = %+v, want %+v", got, want)
	}
}

func TestAggregateHistory_SameDayBucketsToOnePoint(t *testing.T) {
	listings := []Listing{
		{Price: 10, SoldDateRaw: "2026-01-10"},
		{Price: 20, SoldDateRaw: "2026-01-10"},
	}
	points := AggregateHistory(listings)
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	if points[0].AvgPrice != 15 || points[0].Count != 2 {
		t.Errorf("point = %+v, want avg 15 count 2", points[0])
	}
}

func TestAggregateHistory_SortedAndSkipsUndated(t *testing.T) {
	listings := []Listing{
		{Price: 30, SoldDateRaw: "2026-01-15"},
		{Price: 10, SoldDateRaw: "2026-01-05"},
		{Price: 99, SoldDateRaw: ""}, // no sold date, skipped
		{Price: 0, SoldDateRaw: "2026-01-20"}, // unparsed price, skipped
		{Price: 20, SoldDateRaw: "2026-01-10"},
	}
	points := AggregateHistory(listings)
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i-1].Date >= points[i].Date {
			t.Errorf("points not ascending: %q before %q", points[i-1].Date, points[i].Date)
		}
	}
}

func TestAggregateHistory_TruncatesToLast30Dates(t *testing.T) {
	var listings []Listing
	for day := 1; day <= 40; day++ {
		listings = append(listings, Listing{
			Price:       float64(day),
			SoldDateRaw: "2026-03-" + twoDigits(day),
		})
	}
	points := AggregateHistory(listings)
	if len(points) != 30 {
		t.Fatalf("len(points) = %d, want 30", len(points))
	}
	// The oldest 10 dates must have been dropped.
	if points[0].Date != "2026-03-11" {
		t.Errorf("first retained date = %q, want 2026-03-11", points[0].Date)
	}
	if points[len(points)-1].Date != "2026-03-40" {
		t.Errorf("last retained date = %q, want 2026-03-40", points[len(points)-1].Date)
	}
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func TestRound2_HalfUp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{10.005, 10.01},
		{10.004, 10.00},
		{1.995, 2.00},
		{0, 0},
	}
	for _, c := range cases {
		if got := round2(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
