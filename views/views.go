// Package views holds the default templ components of a jsonblog site.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/jsonblog"
)

// Default returns the stock components wired into jsonblog.ViewFuncs.
func Default() jsonblog.ViewFuncs {
	return jsonblog.ViewFuncs{
		Listing:       Listing,
		ListingError:  ListingError,
		Post:          Post,
		SearchResults: SearchResults,
		SearchError:   SearchError,
		NotFound:      NotFound,
		ServerError:   ServerError,
	}
}

// page accumulates HTML output and keeps the first write error.
type page struct {
	w   io.Writer
	err error
}

func (p *page) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *page) text(s string) {
	p.raw(templ.EscapeString(s))
}

// url writes a sanitized URL for an href or src attribute.
func (p *page) url(s string) {
	p.text(string(templ.URL(s)))
}

func component(fn func(p *page)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}
		fn(p)
		return p.err
	})
}
