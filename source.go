package jsonblog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Source loads the full post collection. Implementations return the posts
// in document order and must not cache unless asked to (see PostCache).
type Source interface {
	Posts(ctx context.Context) ([]Post, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Post, error)

func (f SourceFunc) Posts(ctx context.Context) ([]Post, error) { return f(ctx) }

// NewSource picks a Source for loc: an http(s) URL, "sqlite:<path>", or a
// path to a JSON file.
func NewSource(loc string) (Source, error) {
	switch {
	case strings.HasPrefix(loc, "http://"), strings.HasPrefix(loc, "https://"):
		return &HTTPSource{URL: loc}, nil
	case strings.HasPrefix(loc, "sqlite:"):
		return NewSQLiteSource(strings.TrimPrefix(loc, "sqlite:"))
	case loc == "":
		return nil, fmt.Errorf("jsonblog: empty source")
	default:
		return &FileSource{Path: loc}, nil
	}
}

// DecodePosts decodes a JSON array of post records.
func DecodePosts(r io.Reader) ([]Post, error) {
	var posts []Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return nil, fmt.Errorf("jsonblog: decode posts: %w", err)
	}
	if posts == nil {
		// "null" decodes cleanly but is not a collection.
		return nil, fmt.Errorf("jsonblog: decode posts: document is not an array")
	}
	return posts, nil
}

// FileSource reads the collection from a local JSON file on every call.
type FileSource struct {
	Path string
}

func (s *FileSource) Posts(ctx context.Context) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("jsonblog: open %s: %w", s.Path, err)
	}
	defer f.Close()
	return DecodePosts(f)
}

// HTTPSource fetches the collection with a GET on every call.
type HTTPSource struct {
	URL    string
	Client *http.Client // http.DefaultClient when nil
}

func (s *HTTPSource) Posts(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("jsonblog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsonblog: fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("jsonblog: fetch %s: unexpected status %s", s.URL, resp.Status)
	}
	return DecodePosts(resp.Body)
}
