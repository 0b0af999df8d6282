package views

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/jsonblog"
)

// layout wraps content in the site shell. Every page carries the same head
// elements so the post page can fill them in; notFound marks the error page
// for the client script.
func layout(cfg jsonblog.SiteConfig, meta jsonblog.PageMeta, notFound bool, content func(p *page)) templ.Component {
	return component(func(p *page) {
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title id="post-title">`)
		p.text(meta.Title)
		p.raw(`</title>`)
		metaTag(p, `name="description"`, "meta-description", meta.Description)
		metaTag(p, `name="keywords"`, "meta-keywords", meta.Keywords)
		metaTag(p, `property="og:type"`, "og-type", meta.OGType)
		metaTag(p, `property="og:url"`, "og-url", meta.URL)
		ogTitle := meta.OGTitle
		if ogTitle == "" {
			ogTitle = meta.Title
		}
		metaTag(p, `property="og:title"`, "og-title", ogTitle)
		metaTag(p, `property="og:description"`, "og-description", meta.Description)
		metaTag(p, `property="og:image"`, "og-image", meta.Image)
		if meta.JSONLD != "" {
			// encoding/json escapes <, > and & so the payload cannot close the tag.
			p.raw(`<script type="application/ld+json">`)
			p.raw(meta.JSONLD)
			p.raw(`</script>`)
		}
		p.raw(`<link rel="alternate" type="application/rss+xml" title="`)
		p.text(cfg.Name)
		p.raw(`" href="/feed.xml"><link rel="stylesheet" href="/public/style.css"></head>`)

		if notFound {
			p.raw(`<body data-not-found>`)
		} else {
			p.raw(`<body>`)
		}
		p.raw(`<header><nav class="navbar"><a class="logo" href="/">`)
		p.text(cfg.Name)
		p.raw(`</a><button class="hamburger" type="button" aria-label="Menu">&#9776;</button>`)
		p.raw(`<ul class="nav-links"><li><a href="/">Home</a></li><li><a href="/feed.xml">RSS</a></li></ul>`)
		p.raw(`<div class="search-container"><input type="search" id="search-input" placeholder="Search articles..." autocomplete="off">`)
		p.raw(`<div id="search-results" class="search-results"></div></div></nav></header><main>`)
		content(p)
		p.raw(`</main><footer><p>&copy; `)
		p.raw(strconv.Itoa(time.Now().Year()))
		p.raw(` `)
		p.text(cfg.Name)
		p.raw(`</p></footer><script src="/public/blog.js" defer></script></body></html>`)
	})
}

func metaTag(p *page, attr, id, content string) {
	p.raw(`<meta `)
	p.raw(attr)
	p.raw(` id="`)
	p.raw(id)
	p.raw(`" content="`)
	p.text(content)
	p.raw(`">`)
}

// postMeta writes the "By author • date" line shared by cards and posts.
func postMeta(p *page, cfg jsonblog.SiteConfig, post jsonblog.Post) {
	p.raw(`<div class="post-meta"><span>By `)
	p.text(post.Author)
	p.raw(`</span><span>•</span><span>`)
	p.text(post.Date.Display(cfg.DateLayout))
	p.raw(`</span></div>`)
}

func errorMessage(p *page, message func(p *page)) {
	p.raw(`<div class="error-message"><p>`)
	message(p)
	p.raw(`</p></div>`)
}
