package jsonblog

import (
	"strings"
	"unicode/utf16"
)

const (
	// MinQueryLen is the shortest query that triggers a search.
	MinQueryLen = 2
	// MaxSearchResults caps the dropdown.
	MaxSearchResults = 5
)

// NormalizeQuery trims and lowercases a raw search box value. strings.ToLower
// has no special casings (İ lowers to i, no final sigma), unlike the
// browser; titles are lowered the same way so matching stays consistent.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimFunc(raw, isSpace))
}

// QueryTooShort reports whether q is below MinQueryLen. Length is counted in
// UTF-16 units, the way the search box counts it.
func QueryTooShort(q string) bool {
	n := 0
	for _, r := range q {
		n += utf16.RuneLen(r)
		if n >= MinQueryLen {
			return false
		}
	}
	return true
}

// Search returns the first MaxSearchResults posts whose title, excerpt or
// description contains the normalized query q. Results keep collection
// order.
func Search(posts []Post, q string) []Post {
	results := []Post{}
	for _, p := range posts {
		if len(results) == MaxSearchResults {
			break
		}
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Excerpt), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			results = append(results, p)
		}
	}
	return results
}

// SearchHit is the JSON shape of one search result.
type SearchHit struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
}
