package seo

import (
	"strings"
	"testing"
)

func TestCategoryBySlug(t *testing.T) {
	c, ok := CategoryBySlug("electronics")
	if !ok || c.Name != "Electronics" {
		t.Errorf("CategoryBySlug(electronics) = %+v, %v", c, ok)
	}
	if _, ok := CategoryBySlug("no-such-category"); ok {
		t.Error("CategoryBySlug(no-such-category) found something")
	}
}

func TestBrandBySlug(t *testing.T) {
	b, ok := BrandBySlug("rolex")
	if !ok || b.Category != "jewelry" {
		t.Errorf("BrandBySlug(rolex) = %+v, %v", b, ok)
	}
	if _, ok := BrandBySlug("no-such-brand"); ok {
		t.Error("BrandBySlug(no-such-brand) found something")
	}
}

func TestBrands_ReferenceExistingCategories(t *testing.T) {
	for _, b := range Brands {
		if _, ok := CategoryBySlug(b.Category); !ok {
			t.Errorf("brand %q references unknown category %q", b.Slug, b.Category)
		}
	}
}

func TestSitemap_ContainsAllRoutesWithPriorities(t *testing.T) {
	xml := Sitemap("https://pricescan.example.com/")

	if !strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML declaration")
	}
	// Trailing slash on the base URL must not produce double slashes.
	if strings.Contains(xml, "com//") {
		t.Error("sitemap contains double slash in URLs")
	}
	if !strings.Contains(xml, "<loc>https://pricescan.example.com</loc>") {
		t.Error("missing root route")
	}
	for _, c := range Categories {
		if !strings.Contains(xml, "/category/"+c.Slug+"</loc>") {
			t.Errorf("missing category route %q", c.Slug)
		}
	}
	for _, b := range Brands {
		if !strings.Contains(xml, "/brand/"+b.Slug+"</loc>") {
			t.Errorf("missing brand route %q", b.Slug)
		}
	}

	urlCount := strings.Count(xml, "<url>")
	want := 3 + len(Categories) + len(Brands)
	if urlCount != want {
		t.Errorf("url count = %d, want %d", urlCount, want)
	}
}

func TestRouteMeta(t *testing.T) {
	cases := []struct {
		route, priority, changefreq string
	}{
		{"", "1.0", "daily"},
		{"/category/electronics", "0.8", "weekly"},
		{"/brand/apple", "0.7", "weekly"},
		{"/guides/selling-tips", "0.5", "weekly"},
	}
	for _, c := range cases {
		p, f := routeMeta(c.route)
		if p != c.priority || f != c.changefreq {
			t.Errorf("routeMeta(%q) = %s/%s, want %s/%s", c.route, p, f, c.priority, c.changefreq)
		}
	}
}
