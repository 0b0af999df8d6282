package jsonblog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Keywords builds the meta keywords of a post page: the site keyword, the
// lowercased title split on single spaces, and the author.
func Keywords(keyword string, p Post) string {
	tokens := strings.Split(strings.ToLower(p.Title), " ")
	return keyword + ", " + strings.Join(tokens, ", ") + ", " + p.Author
}

// PostMeta returns the head metadata of a post page served at pageURL.
func PostMeta(cfg SiteConfig, p Post, pageURL string) PageMeta {
	return PageMeta{
		Title:       p.Title + " | " + cfg.Name,
		OGTitle:     p.Title,
		Description: p.Excerpt,
		Keywords:    Keywords(cfg.Keyword, p),
		URL:         pageURL,
		Image:       p.Image,
		OGType:      "article",
		JSONLD:      BlogPostingJsonLD(cfg, p, pageURL),
	}
}

// ListingMeta returns the head metadata of a listing page.
func ListingMeta(cfg SiteConfig, pageURL string) PageMeta {
	return PageMeta{
		Title:       cfg.Name,
		OGTitle:     cfg.Name,
		Description: cfg.Description,
		Keywords:    cfg.Keyword,
		URL:         pageURL,
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(cfg),
	}
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL resolves a site-relative reference such as a post path or a
// request URI against base.
func AbsoluteURL(base, ref string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(cfg SiteConfig, post Post, pageURL string) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date.Format("2006-01-02"),
		"url":           pageURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   pageURL,
		},
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	if post.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
