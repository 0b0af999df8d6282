package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/jsonblog"
)

// SearchResults renders the dropdown fragment for the search box.
func SearchResults(cfg jsonblog.SiteConfig, posts []jsonblog.Post) templ.Component {
	return component(func(p *page) {
		if len(posts) == 0 {
			p.raw(`<div class="no-results">No articles found</div>`)
			return
		}
		for _, post := range posts {
			p.raw(`<a href="`)
			p.url(post.Path())
			p.raw(`">`)
			p.text(post.Title)
			p.raw(` <small>(`)
			p.text(post.Date.Display(cfg.DateLayout))
			p.raw(`)</small></a>`)
		}
	})
}

// SearchError renders the dropdown fragment shown when posts could not be loaded.
func SearchError() templ.Component {
	return component(func(p *page) {
		p.raw(`<div class="no-results">Error loading search results</div>`)
	})
}
