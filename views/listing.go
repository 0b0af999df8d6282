package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/jsonblog"
)

// Listing renders one page of post cards and the pagination controls.
func Listing(cfg jsonblog.SiteConfig, meta jsonblog.PageMeta, listing jsonblog.Listing) templ.Component {
	return layout(cfg, meta, false, func(p *page) {
		p.raw(`<section class="blog-grid" id="blog-grid">`)
		for _, post := range listing.Posts {
			card(p, cfg, post)
		}
		p.raw(`</section><nav class="pagination" id="pagination">`)
		if listing.Pagination.Visible() {
			pagination(p, listing.Pagination)
		}
		p.raw(`</nav>`)
	})
}

// ListingError renders the listing page when posts could not be loaded.
func ListingError(cfg jsonblog.SiteConfig, meta jsonblog.PageMeta) templ.Component {
	return layout(cfg, meta, false, func(p *page) {
		p.raw(`<section class="blog-grid" id="blog-grid">`)
		errorMessage(p, func(p *page) {
			p.raw(`Failed to load blog posts. Please try again later.`)
		})
		p.raw(`</section><nav class="pagination" id="pagination"></nav>`)
	})
}

func card(p *page, cfg jsonblog.SiteConfig, post jsonblog.Post) {
	href := post.Path()
	p.raw(`<article class="blog-card"><div class="card-image"><a href="`)
	p.url(href)
	p.raw(`"><img src="`)
	p.url(post.Image)
	p.raw(`" alt="`)
	p.text(post.Title)
	p.raw(`"></a></div><div class="card-content">`)
	postMeta(p, cfg, post)
	p.raw(`<h2><a href="`)
	p.url(href)
	p.raw(`">`)
	p.text(post.Title)
	p.raw(`</a></h2><p>`)
	p.text(post.Excerpt)
	p.raw(`</p><a href="`)
	p.url(href)
	p.raw(`" class="read-more">Read More →</a></div></article>`)
}

func pagination(p *page, pg jsonblog.Pagination) {
	if pg.HasPrev() {
		pageLink(p, pg.Current-1, "← Previous", false)
	}
	for _, n := range pg.Pages {
		pageLink(p, n, strconv.Itoa(n), n == pg.Current)
	}
	if pg.HasNext() {
		pageLink(p, pg.Current+1, "Next →", false)
	}
}

func pageLink(p *page, n int, label string, active bool) {
	p.raw(`<a href="`)
	p.text(jsonblog.PageURL(n))
	p.raw(`"`)
	if active {
		p.raw(` class="active"`)
	}
	p.raw(`>`)
	p.text(label)
	p.raw(`</a>`)
}
