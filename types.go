package jsonblog

// Post is one record of the blog's JSON document. Posts carry no identifier;
// a post is addressed by its calendar date and the slug of its title.
type Post struct {
	Title       string `json:"title"`
	Date        Date   `json:"date"`
	Excerpt     string `json:"excerpt"`
	Description string `json:"description"` // HTML fragment
	Author      string `json:"author"`
	Image       string `json:"image"`
}

// Slug returns the URL slug derived from the post title.
func (p Post) Slug() string {
	return Slug(p.Title)
}

// Path returns the post's site-relative URL, e.g. /2024/03/05/my-post.html.
func (p Post) Path() string {
	year, month, day := p.Date.Parts()
	return "/" + year + "/" + month + "/" + day + "/" + p.Slug() + ".html"
}

// Params returns the route parameters that address this post.
func (p Post) Params() PostParams {
	year, month, day := p.Date.Parts()
	return PostParams{Year: year, Month: month, Day: day, Slug: p.Slug()}
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	OGTitle     string // og:title; the page title when empty
	Description string
	Keywords    string
	URL         string // og:url
	Image       string // og:image
	OGType      string // "website" or "article"
	JSONLD      string
}
