package jsonblog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/labstack/echo/v4"
)

// handlePage dispatches every page path to the listing or the post renderer.
func (a *App) handlePage(c echo.Context) error {
	path := c.Request().URL.EscapedPath()
	switch Classify(path, HasListing(path)) {
	case RoutePost:
		return a.handlePost(c, path)
	case RouteListing:
		return a.handleListing(c)
	default:
		return echo.ErrNotFound
	}
}

func (a *App) handleListing(c echo.Context) error {
	meta := ListingMeta(a.Config, AbsoluteURL(a.Config.URL, c.Request().RequestURI))
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("error loading posts: %v", err)
		return RenderStatus(c, http.StatusServiceUnavailable, a.Views.ListingError(a.Config, meta))
	}
	page := PageNumber(c.QueryParam("page"))
	return Render(c, a.Views.Listing(a.Config, meta, BuildListing(posts, page)))
}

func (a *App) handlePost(c echo.Context, path string) error {
	params, err := ParsePostParams(path, c.Request().URL.Fragment)
	if err != nil {
		c.Logger().Warnf("error loading post %s: %v", path, err)
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
	}
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("error loading post %s: %v", path, err)
		return RenderStatus(c, http.StatusServiceUnavailable, a.Views.NotFound(a.Config))
	}
	post, err := FindPost(posts, params)
	if errors.Is(err, ErrNotFound) {
		return c.Redirect(http.StatusFound, "/")
	}
	post.Description = a.postBody(post.Description)
	meta := PostMeta(a.Config, post, AbsoluteURL(a.Config.URL, c.Request().RequestURI))
	return Render(c, a.Views.Post(a.Config, meta, post))
}

func (a *App) handleSearch(c echo.Context) error {
	if !a.searchLimiter.Allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}
	q := NormalizeQuery(c.QueryParam("q"))
	if QueryTooShort(q) {
		return c.NoContent(http.StatusNoContent)
	}
	asJSON := c.QueryParam("format") == "json"

	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("search error: %v", err)
		if asJSON {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Error loading search results"})
		}
		return Render(c, a.Views.SearchError())
	}

	results := Search(posts, q)
	if asJSON {
		hits := make([]SearchHit, 0, len(results))
		for _, p := range results {
			hits = append(hits, SearchHit{
				Title: p.Title,
				URL:   p.Path(),
				Date:  p.Date.Display(a.Config.DateLayout),
			})
		}
		return c.JSON(http.StatusOK, hits)
	}
	return Render(c, a.Views.SearchResults(a.Config, results))
}

// handleData serves the collection as JSON with a content hash ETag.
func (a *App) handleData(c echo.Context) error {
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("error loading posts: %v", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "posts unavailable")
	}
	b, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(b))
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, b)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.Config.URL, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteFeed(c.Response(), a.Config, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
