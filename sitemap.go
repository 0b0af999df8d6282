package jsonblog

import (
	"encoding/xml"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap of the listing and every post, in collection
// order. A post shadowed by an earlier one with the same route is listed once.
func WriteSitemap(w io.Writer, base string, posts []Post) error {
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	seen := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		path := p.Path()
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		urls = append(urls, sitemapURL{
			Loc:     AbsoluteURL(base, path),
			LastMod: p.Date.Format("2006-01-02"),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}
