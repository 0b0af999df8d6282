package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoPosts = `[
  {"title": "My Post", "date": "2024-03-05", "excerpt": "e", "description": "<p>d</p>", "author": "Jane", "image": "/a.jpg"},
  {"title": "Older", "date": "2023-01-02", "excerpt": "e", "description": "<p>d</p>", "author": "Joe", "image": "/b.jpg"}
]`

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jsonblog dev\n", out)
}

func TestCheck(t *testing.T) {
	src := writeFile(t, t.TempDir(), "blog_data.json", twoPosts)

	out, err := execute(t, "check", "--source", src)
	require.NoError(t, err)
	assert.Contains(t, out, "2 posts loaded from "+src)
	assert.True(t, strings.HasSuffix(out, "ok\n"))
}

func TestCheckReportsShadowedPosts(t *testing.T) {
	src := writeFile(t, t.TempDir(), "blog_data.json", `[
  {"title": "My Post", "date": "2024-03-05", "excerpt": "", "description": "", "author": "", "image": ""},
  {"title": "My Post!", "date": "2024-03-05", "excerpt": "", "description": "", "author": "", "image": ""}
]`)

	out, err := execute(t, "check", "--source", src)
	require.Error(t, err)
	assert.Equal(t, "1 problem(s) found", err.Error())
	assert.Contains(t, out, "post #1 (/2024/03/05/my-post.html) is unreachable: post #0 has the same route")
}

func TestCheckInvalidSource(t *testing.T) {
	src := writeFile(t, t.TempDir(), "blog_data.json", `{"not": "an array"}`)

	_, err := execute(t, "check", "--source", src)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "posts.json", twoPosts)
	cfgPath := writeFile(t, dir, "site.yaml", "source: "+src+"\n")

	out, err := execute(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 posts loaded from "+src)

	_, err = execute(t, "check", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "blog_data.json", twoPosts)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "export", "--source", src, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+filepath.Join(outDir, "sitemap.xml"))

	sitemap, err := os.ReadFile(filepath.Join(outDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>http://localhost:3000/2024/03/05/my-post.html</loc>")

	feed, err := os.ReadFile(filepath.Join(outDir, "feed.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(feed), "<title>Older</title>")
}

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-blog")

	out, err := execute(t, "new", dir, "--author", "Jane")
	require.NoError(t, err)
	assert.Contains(t, out, "Creating new jsonblog site")

	cfg, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), `name: "My Blog"`)
	assert.Contains(t, string(cfg), `keyword: "laundry"`)
	assert.FileExists(t, filepath.Join(dir, "public", "robots.txt"))
	assert.FileExists(t, filepath.Join(dir, "public", "style.css"))

	// The scaffolded collection passes check.
	out, err = execute(t, "check", "--source", filepath.Join(dir, "blog_data.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "1 posts loaded")

	_, err = execute(t, "new", dir)
	assert.Error(t, err, "existing directory")
}

func TestToTitle(t *testing.T) {
	assert.Equal(t, "My Blog", toTitle("my-blog"))
	assert.Equal(t, "Myblog", toTitle("myblog"))
}
