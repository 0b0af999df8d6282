package jsonblog

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound is returned when no post matches the requested route.
var ErrNotFound = errors.New("jsonblog: post not found")

// Matches reports whether post is the one p addresses. The slug, month and
// day must be equal strings; the year is compared numerically so "02024"
// still finds a 2024 post.
func (p PostParams) Matches(post Post) bool {
	if p.incomplete || post.Slug() != p.Slug {
		return false
	}
	_, month, day := post.Date.Parts()
	return month == p.Month && day == p.Day && looseYearEqual(post.Date.Year(), p.Year)
}

// FindPost returns the first post in collection order that params addresses.
// Two posts with the same title and day are indistinguishable; the earlier
// one wins.
func FindPost(posts []Post, params PostParams) (Post, error) {
	for _, post := range posts {
		if params.Matches(post) {
			return post, nil
		}
	}
	return Post{}, ErrNotFound
}

func looseYearEqual(year int, s string) bool {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return year == 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return f == float64(year)
}
