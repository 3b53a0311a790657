package locale

import "testing"

func TestMarketplaceByID_KnownAndDefault(t *testing.T) {
	if m := MarketplaceByID("US"); m.Currency != "USD" || m.Name != "US" {
		t.Errorf("MarketplaceByID(US) = %+v", m)
	}
	if m := MarketplaceByID("PT"); m.Currency != "BRL" || m.Locale != "pt-BR" {
		t.Errorf("MarketplaceByID(PT) = %+v", m)
	}
	// Unrecognized codes fall back to the default marketplace, not an error.
	if m := MarketplaceByID("ZZ"); m.ID != "GB" {
		t.Errorf("MarketplaceByID(ZZ) = %+v, want GB default", m)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{12.34, "GBP", "£12.34"},
		{5, "USD", "$5.00"},
		{99.9, "BRL", "R$99.90"},
		{7.5, "XYZ", "XYZ 7.50"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.amount, c.currency); got != c.want {
			t.Errorf("FormatPrice(%v, %q) = %q, want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestForLocale_Fallback(t *testing.T) {
	if tr := ForLocale("fr"); tr.Locale != "fr" || tr.NoResults == "" {
		t.Errorf("ForLocale(fr) = %+v", tr)
	}
	if tr := ForLocale("de"); tr.Locale != "en" {
		t.Errorf("ForLocale(de) = %+v, want English fallback", tr)
	}
}

func TestLocales_MatchTranslationTable(t *testing.T) {
	for _, l := range Locales() {
		if tr := ForLocale(l); tr.Locale != l {
			t.Errorf("locale %q missing from translation table", l)
		}
	}
}
