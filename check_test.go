package jsonblog

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func TestCheckPosts(t *testing.T) {
	posts := []Post{
		testPost("My Post", "2024-03-05"),
		testPost("Other", "2024-03-05"),
		testPost("My Post!", "2024-03-05"),
		testPost("???", "2024-03-06"),
	}
	r := CheckPosts(posts)
	if r.OK() {
		t.Fatal("expected problems")
	}
	if r.Posts != 4 {
		t.Errorf("Posts = %d, want 4", r.Posts)
	}
	if len(r.Shadowed) != 1 || r.Shadowed[0].Index != 2 || r.Shadowed[0].ByIndex != 0 {
		t.Errorf("Shadowed = %+v, want post 2 shadowed by post 0", r.Shadowed)
	}
	if len(r.EmptySlugs) != 1 || r.EmptySlugs[0] != 3 {
		t.Errorf("EmptySlugs = %v, want [3]", r.EmptySlugs)
	}
}

func TestCheckPostsClean(t *testing.T) {
	r := CheckPosts([]Post{testPost("A", "2024-01-01"), testPost("A", "2024-01-02")})
	if !r.OK() {
		t.Errorf("report = %+v, want OK", r)
	}
}

func TestWriteSitemap(t *testing.T) {
	posts := []Post{
		testPost("My Post", "2024-03-05"),
		testPost("My Post", "2024-03-05"),
		testPost("Older", "2023-01-02"),
	}
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, "https://example.com", posts); err != nil {
		t.Fatalf("WriteSitemap failed: %v", err)
	}
	var set sitemapURLSet
	if err := xml.Unmarshal(buf.Bytes(), &set); err != nil {
		t.Fatalf("invalid sitemap XML: %v", err)
	}
	if len(set.URLs) != 3 {
		t.Fatalf("got %d URLs, want 3 (root + 2 distinct posts)", len(set.URLs))
	}
	if set.URLs[0].Loc != "https://example.com" {
		t.Errorf("root = %q", set.URLs[0].Loc)
	}
	if set.URLs[1].Loc != "https://example.com/2024/03/05/my-post.html" || set.URLs[1].LastMod != "2024-03-05" {
		t.Errorf("post URL = %+v", set.URLs[1])
	}
}

func TestWriteFeed(t *testing.T) {
	cfg := SiteConfig{Name: "Blog", URL: "https://example.com/"}
	posts := []Post{testPost("Older", "2023-01-02"), testPost("Newer", "2024-03-05")}
	var buf bytes.Buffer
	if err := WriteFeed(&buf, cfg, posts); err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	var feed rssXML
	if err := xml.Unmarshal(buf.Bytes(), &feed); err != nil {
		t.Fatalf("invalid feed XML: %v", err)
	}
	if len(feed.Channel.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(feed.Channel.Items))
	}
	first := feed.Channel.Items[0]
	if first.Title != "Newer" {
		t.Errorf("first item = %q, want newest", first.Title)
	}
	if first.Link != "https://example.com/2024/03/05/newer.html" {
		t.Errorf("link = %q", first.Link)
	}
	if !strings.HasPrefix(first.PubDate, "Tue, 05 Mar 2024") {
		t.Errorf("pubDate = %q", first.PubDate)
	}
}

func TestKeywords(t *testing.T) {
	p := testPost("Best  Stain Removers", "2024-01-01")
	p.Author = "Jane"
	got := Keywords("laundry", p)
	want := "laundry, best, , stain, removers, Jane"
	if got != want {
		t.Errorf("Keywords = %q, want %q", got, want)
	}
}

func TestPostMeta(t *testing.T) {
	cfg := SiteConfig{Name: "My Laundry Blog", Keyword: "laundry"}
	p := testPost("My Post", "2024-03-05")
	meta := PostMeta(cfg, p, "https://example.com/2024/03/05/my-post.html")
	if meta.Title != "My Post | My Laundry Blog" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != p.Excerpt || meta.Image != p.Image {
		t.Errorf("meta = %+v", meta)
	}
	if !strings.Contains(meta.JSONLD, `"headline":"My Post"`) {
		t.Errorf("JSONLD = %s", meta.JSONLD)
	}
}
