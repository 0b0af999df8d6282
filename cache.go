package jsonblog

import (
	"context"
	"sync"
	"time"
)

// PostCache is an in-memory cache of the post collection with TTL. With a
// zero TTL every call reaches the underlying Source.
type PostCache struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	ttl     time.Duration
	source  Source
}

// NewPostCache creates a PostCache backed by the given Source.
func NewPostCache(s Source, ttl time.Duration) *PostCache {
	return &PostCache{source: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// Posts returns the collection, loading it when the cache is stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
// Callers must not modify the returned slice.
func (c *PostCache) Posts(ctx context.Context) ([]Post, error) {
	if c.ttl <= 0 {
		return c.source.Posts(ctx)
	}

	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.source.Posts(ctx)
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}
