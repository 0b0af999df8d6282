package jsonblog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads posts from the posts table of a SQLite database:
//
//	CREATE TABLE posts (title, date, excerpt, description, author, image)
//
// Rows are returned in rowid order, which plays the role of document order.
// The database is opened read-only.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens the database at path.
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("jsonblog: open %s: %w", path, err)
	}
	// Writers of the database may hold a lock briefly; wait instead of
	// failing with SQLITE_BUSY.
	if _, err := db.Exec(`PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("jsonblog: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	return &SQLiteSource{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) Posts(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, date, excerpt, description, author, image FROM posts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("jsonblog: query posts: %w", err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		var date string
		if err := rows.Scan(&p.Title, &date, &p.Excerpt, &p.Description, &p.Author, &p.Image); err != nil {
			return nil, fmt.Errorf("jsonblog: scan post: %w", err)
		}
		if p.Date, err = ParseDate(date); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("jsonblog: query posts: %w", err)
	}
	return posts, nil
}
