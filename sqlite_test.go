package jsonblog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blog.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
CREATE TABLE posts (
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    description TEXT NOT NULL,
    author TEXT NOT NULL,
    image TEXT NOT NULL
);`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	rows := [][]string{
		{"Second Inserted", "2023-01-01", "e2", "<p>2</p>", "Joe", "/b.jpg"},
		{"First Inserted", "2024-03-05", "e1", "<p>1</p>", "Jane", "/a.jpg"},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO posts (title, date, excerpt, description, author, image) VALUES (?, ?, ?, ?, ?, ?)`,
			r[0], r[1], r[2], r[3], r[4], r[5]); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestSQLiteSource(t *testing.T) {
	path := setupTestDB(t)
	src, err := NewSQLiteSource(path)
	if err != nil {
		t.Fatalf("NewSQLiteSource failed: %v", err)
	}
	defer src.Close()

	posts, err := src.Posts(context.Background())
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	// Insertion order is document order.
	if posts[0].Title != "Second Inserted" || posts[1].Title != "First Inserted" {
		t.Errorf("order = %q, %q", posts[0].Title, posts[1].Title)
	}
	if posts[1].Path() != "/2024/03/05/first-inserted.html" {
		t.Errorf("Path = %q", posts[1].Path())
	}
	if posts[1].Description != "<p>1</p>" || posts[1].Author != "Jane" {
		t.Errorf("post = %+v", posts[1])
	}
}

func TestSQLiteSourceViaNewSource(t *testing.T) {
	path := setupTestDB(t)
	src, err := NewSource("sqlite:" + path)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	s, ok := src.(*SQLiteSource)
	if !ok {
		t.Fatalf("NewSource = %T, want *SQLiteSource", src)
	}
	defer s.Close()
	if _, err := s.Posts(context.Background()); err != nil {
		t.Errorf("Posts failed: %v", err)
	}
}

func TestSQLiteSourceMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE other (x INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	db.Close()

	src, err := NewSQLiteSource(path)
	if err != nil {
		t.Fatalf("NewSQLiteSource failed: %v", err)
	}
	defer src.Close()
	if _, err := src.Posts(context.Background()); err == nil {
		t.Error("expected error when posts table is missing")
	}
}
