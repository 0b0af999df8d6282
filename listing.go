package jsonblog

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// PageSize is the number of posts on one listing page.
const PageSize = 6

// SortNewestFirst orders posts by date, newest first. Posts sharing a date
// keep their collection order.
func SortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date.Time)
	})
}

// PageNumber reads the page query value. Like parseInt it accepts a leading
// integer ("3abc" is 3); anything unreadable, zero or negative gives 1.
// There is no upper bound.
func PageNumber(raw string) int {
	s := strings.TrimLeftFunc(raw, isSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow gets here; such a page is simply past the end.
		return math.MaxInt
	}
	if n < 1 {
		return 1
	}
	return n
}

// TotalPages returns ceil(count/size).
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// PageSlice returns the posts of the 1-based page. Pages past the end are
// empty, not an error.
func PageSlice(posts []Post, page, size int) []Post {
	if page < 1 || size <= 0 || page-1 >= (len(posts)+size-1)/size {
		return []Post{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

// Pagination describes the controls under the listing grid.
type Pagination struct {
	Current int
	Total   int
	Pages   []int // numbered links, current-1..current+1 clamped to 1..Total
}

// NewPagination builds the controls for page current of total.
func NewPagination(current, total int) Pagination {
	p := Pagination{Current: current, Total: total}
	start := current - 1
	if start < 1 {
		start = 1
	}
	end := total
	if current < math.MaxInt && current+1 < end {
		end = current + 1
	}
	for i := start; i <= end; i++ {
		p.Pages = append(p.Pages, i)
	}
	return p
}

// Visible reports whether controls are rendered at all.
func (p Pagination) Visible() bool { return p.Total > 1 }

// HasPrev reports whether a "Previous" link is shown.
func (p Pagination) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a "Next" link is shown.
func (p Pagination) HasNext() bool { return p.Current < p.Total }

// PageURL returns the listing URL of page n.
func PageURL(n int) string {
	return "/index.html?page=" + strconv.Itoa(n)
}

// Listing is one rendered page of the post listing.
type Listing struct {
	Posts      []Post
	Pagination Pagination
}

// BuildListing sorts a copy of posts newest first and cuts out page.
func BuildListing(posts []Post, page int) Listing {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	SortNewestFirst(sorted)
	total := TotalPages(len(sorted), PageSize)
	return Listing{
		Posts:      PageSlice(sorted, page, PageSize),
		Pagination: NewPagination(page, total),
	}
}
