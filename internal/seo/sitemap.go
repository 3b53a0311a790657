package seo

import (
	"fmt"
	"strings"
)

// staticRoutes are the non-generated pages included in the sitemap.
var staticRoutes = []string{
	"",
	"/guides/selling-tips",
	"/guides/buying-guide",
}

// Sitemap renders the sitemap XML for all static, category, and brand routes.
// Priorities: root 1.0/daily, categories 0.8/weekly, brands 0.7/weekly,
// everything else 0.5/weekly.
func Sitemap(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	routes := make([]string, 0, len(staticRoutes)+len(Categories)+len(Brands))
	routes = append(routes, staticRoutes...)
	for _, c := range Categories {
		routes = append(routes, "/category/"+c.Slug)
	}
	for _, b := range Brands {
		routes = append(routes, "/brand/"+b.Slug)
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, route := range routes {
		priority, changefreq := routeMeta(route)
		fmt.Fprintf(&sb, "  <url>\n    <loc>%s%s</loc>\n    <priority>%s</priority>\n    <changefreq>%s</changefreq>\n  </url>\n",
			baseURL, route, priority, changefreq)
	}
	sb.WriteString("</urlset>\n")
	return sb.String()
}

func routeMeta(route string) (priority, changefreq string) {
	switch {
	case route == "":
		return "1.0", "daily"
	case strings.HasPrefix(route, "/category/"):
		return "0.8", "weekly"
	case strings.HasPrefix(route, "/brand/"):
		return "0.7", "weekly"
	default:
		return "0.5", "weekly"
	}
}
