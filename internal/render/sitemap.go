// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"encoding/xml"
	"fmt"
	"strings"

	"lorasite/internal/models"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap builds sitemap.xml from the homepage, every active content slug,
// and the hrefs of active menus. External menu hrefs are kept as given;
// site-relative ones are resolved against baseURL. Duplicates are removed
// preserving first occurrence.
func Sitemap(baseURL string, slugs []string, menus []models.Menu) ([]byte, error) {
	baseURL = strings.TrimRight(baseURL, "/")

	seen := make(map[string]bool)
	var urls []sitemapURL
	add := func(loc string) {
		if loc == "" || seen[loc] {
			return
		}
		seen[loc] = true
		urls = append(urls, sitemapURL{Loc: loc})
	}

	add(baseURL + "/")
	for _, slug := range slugs {
		add(baseURL + "/" + slug)
	}
	for _, m := range menus {
		if !m.IsActive {
			continue
		}
		for _, item := range m.Items {
			add(resolveHref(baseURL, item.Href))
			for _, child := range item.Children {
				add(resolveHref(baseURL, child.Href))
			}
		}
	}

	out, err := xml.MarshalIndent(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func resolveHref(baseURL, href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "/"):
		return baseURL + href
	default:
		return baseURL + "/" + href
	}
}
