package jsonblog

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrorPageName marks the error page. It is routed like a post page so its
// lookup runs and falls through to the not-found block.
const ErrorPageName = "404.html"

// ErrInvalidRoute is returned when neither the path nor the fragment carry
// post route parameters.
var ErrInvalidRoute = errors.New("jsonblog: invalid post URL")

var postPathRe = regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/(.+)\.html$`)

// RouteKind is the kind of page a path renders.
type RouteKind int

const (
	RouteNone RouteKind = iota
	RouteListing
	RoutePost
)

func (k RouteKind) String() string {
	switch k {
	case RouteListing:
		return "listing"
	case RoutePost:
		return "post"
	default:
		return "none"
	}
}

// IsPostPath reports whether path is the error page or has the shape
// /YYYY/MM/DD/<slug>.html.
func IsPostPath(path string) bool {
	return strings.Contains(path, ErrorPageName) || postPathRe.MatchString(path)
}

// HasListing reports whether the page at path carries the listing grid.
// Listing pages are directory indexes: "/", "/some/dir/" and ".../index.html".
func HasListing(path string) bool {
	return path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, "/index.html")
}

// Classify decides what the page at path renders. Post pages win over
// listings; a path that is neither renders nothing.
func Classify(path string, hasListing bool) RouteKind {
	switch {
	case IsPostPath(path):
		return RoutePost
	case hasListing:
		return RouteListing
	default:
		return RouteNone
	}
}

// Resolve classifies u and, for post pages, parses its route parameters.
// The error is ErrInvalidRoute when a post page carries no parameters.
func Resolve(u *url.URL) (RouteKind, PostParams, error) {
	path := u.EscapedPath()
	kind := Classify(path, HasListing(path))
	if kind != RoutePost {
		return kind, PostParams{}, nil
	}
	params, err := ParsePostParams(path, u.Fragment)
	return kind, params, err
}

// PostParams addresses a post by its date parts and slug. Fields are kept as
// the strings found in the URL.
type PostParams struct {
	Year  string
	Month string
	Day   string
	Slug  string

	incomplete bool // fragment had fewer than four segments
}

// Path returns the canonical post path for p.
func (p PostParams) Path() string {
	return "/" + p.Year + "/" + p.Month + "/" + p.Day + "/" + p.Slug + ".html"
}

// ParsePostParams reads route parameters from path, falling back to a
// legacy fragment of the form year/month/day/slug. Missing fragment segments
// are left empty and so never match a post.
func ParsePostParams(path, fragment string) (PostParams, error) {
	if m := postPathRe.FindStringSubmatch(path); m != nil {
		return PostParams{Year: m[1], Month: m[2], Day: m[3], Slug: m[4]}, nil
	}
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return PostParams{}, ErrInvalidRoute
	}
	parts := strings.Split(fragment, "/")
	var fields [4]string
	copy(fields[:], parts)
	return PostParams{
		Year:       fields[0],
		Month:      fields[1],
		Day:        fields[2],
		Slug:       fields[3],
		incomplete: len(parts) < len(fields),
	}, nil
}
