package engine

import (
	"reflect"
	"testing"

	"pricescan/internal/ebay"
)

func TestNormalize_FullRecord(t *testing.T) {
	item := ebay.ItemSummary{
		Title:        "iPhone 13 128GB",
		Price:        &ebay.Money{Value: 299.99, Currency: "GBP"},
		ConditionID:  "3002",
		Image:        &ebay.Image{ImageURL: "https://i.ebayimg.com/a.jpg"},
		ItemWebURL:   "https://www.ebay.com/itm/123",
		ItemSoldDate: "2026-01-15",
	}
	got := Normalize(item, "iphone 13")

	want := Listing{
		Title:       "iPhone 13 128GB",
		Image:       "https://i.ebayimg.com/a.jpg",
		Price:       299.99,
		Currency:    "GBP",
		Condition:   "Used - Good",
		SoldDate:    "Jan 15, 2026",
		SoldDateRaw: "2026-01-15",
		URL:         "https://www.ebay.com/itm/123",
	}
	if got != want {
		t.Errorf("Normalize = %+v, want %+v", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	item := ebay.ItemSummary{
		Title:       "Camera",
		Price:       &ebay.Money{Value: 120, Currency: "USD"},
		ConditionID: "3000",
	}
	first := Normalize(item, "camera")
	second := Normalize(item, "camera")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalize not idempotent: %+v vs %+v", first, second)
	}
}

func TestNormalize_PricePrecedence(t *testing.T) {
	cases := []struct {
		name string
		item ebay.ItemSummary
		want float64
	}{
		{
			name: "primary price wins",
			item: ebay.ItemSummary{
				Price:           &ebay.Money{Value: 10},
				CurrentBidPrice: &ebay.Money{Value: 20},
				SoldPrice:       30,
			},
			want: 10,
		},
		{
			name: "falls back to current bid",
			item: ebay.ItemSummary{
				CurrentBidPrice: &ebay.Money{Value: 20},
				SoldPrice:       30,
			},
			want: 20,
		},
		{
			name: "falls back to raw sold price",
			item: ebay.ItemSummary{SoldPrice: 30},
			want: 30,
		},
		{
			name: "nothing parses: zero sentinel",
			item: ebay.ItemSummary{},
			want: 0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.item, "q").Price; got != c.want {
				t.Errorf("Price = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNormalize_ConditionFallbacks(t *testing.T) {
	cases := []struct {
		name string
		item ebay.ItemSummary
		want string
	}{
		{"known code", ebay.ItemSummary{ConditionID: "3004"}, "New"},
		{"unrecognized code", ebay.ItemSummary{ConditionID: "9999"}, "Unknown"},
		{"literal string", ebay.ItemSummary{Condition: "Open box"}, "Open box"},
		{"nothing", ebay.ItemSummary{}, "Unknown"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.item, "q").Condition; got != c.want {
				t.Errorf("Condition = %q, want %q", got, c.want)
			}
		})
	}
}

func TestNormalize_ImagePrecedence(t *testing.T) {
	item := ebay.ItemSummary{
		ThumbnailImages: []ebay.Image{{ImageURL: "https://i.ebayimg.com/thumb.jpg"}},
	}
	if got := Normalize(item, "q").Image; got != "https://i.ebayimg.com/thumb.jpg" {
		t.Errorf("Image = %q, want thumbnail fallback", got)
	}
	if got := Normalize(ebay.ItemSummary{}, "q").Image; got != "" {
		t.Errorf("Image = %q, want empty when source has none", got)
	}
}

func TestNormalize_URLFallbackEncodesQuery(t *testing.T) {
	got := Normalize(ebay.ItemSummary{}, "nintendo switch oled").URL
	want := "https://www.ebay.com/sch/i.html?_nkw=nintendo+switch+oled"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestNormalize_MissingSoldDateStaysEmpty(t *testing.T) {
	got := Normalize(ebay.ItemSummary{Title: "x"}, "q")
	if got.SoldDate != "" || got.SoldDateRaw != "" {
		t.Errorf("sold dates = %q/%q, want empty for undated record", got.SoldDate, got.SoldDateRaw)
	}
}

func TestNormalize_DefaultCurrency(t *testing.T) {
	if got := Normalize(ebay.ItemSummary{}, "q").Currency; got != "USD" {
		t.Errorf("Currency = %q, want USD fallback", got)
	}
}

func TestNormalizeAll_PreservesOrderAndLength(t *testing.T) {
	items := ebay.MockListings("iphone", "US")
	listings := NormalizeAll(items, "iphone")
	if len(listings) != 3 {
		t.Fatalf("len = %d, want 3", len(listings))
	}
	if listings[0].Price != 25.99 || listings[1].Price != 32.50 || listings[2].Price != 45.00 {
		t.Errorf("prices = %v/%v/%v, want mock order preserved",
			listings[0].Price, listings[1].Price, listings[2].Price)
	}
	if listings[2].Condition != "New" {
		t.Errorf("condition = %q, want New", listings[2].Condition)
	}
}
