package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/jsonblog"
)

// Post renders a single post. The description is written as HTML.
func Post(cfg jsonblog.SiteConfig, meta jsonblog.PageMeta, post jsonblog.Post) templ.Component {
	return layout(cfg, meta, false, func(p *page) {
		p.raw(`<article class="post" id="post-content"><h1>`)
		p.text(post.Title)
		p.raw(`</h1>`)
		postMeta(p, cfg, post)
		p.raw(`<div class="featured-image"><img src="`)
		p.url(post.Image)
		p.raw(`" alt="`)
		p.text(post.Title)
		p.raw(`"></div><div class="post-body">`)
		p.raw(post.Description)
		p.raw(`</div><a href="/" class="back-link">← Back to Blog</a></article>`)
	})
}

// NotFound is the error page: the post page shell with a fixed message.
func NotFound(cfg jsonblog.SiteConfig) templ.Component {
	meta := jsonblog.PageMeta{
		Title:       "Post not found | " + cfg.Name,
		Description: cfg.Description,
		Keywords:    cfg.Keyword,
		OGType:      "website",
	}
	return layout(cfg, meta, true, func(p *page) {
		p.raw(`<article class="post" id="post-content">`)
		errorMessage(p, func(p *page) {
			p.raw(`Post not found. <a href="/">Return to blog</a>`)
		})
		p.raw(`</article>`)
	})
}

// ServerError renders the generic 5xx page.
func ServerError(cfg jsonblog.SiteConfig) templ.Component {
	meta := jsonblog.PageMeta{Title: "Error | " + cfg.Name, OGType: "website"}
	return layout(cfg, meta, false, func(p *page) {
		errorMessage(p, func(p *page) {
			p.raw(`Something went wrong. Please try again later. <a href="/">Return to blog</a>`)
		})
	})
}
