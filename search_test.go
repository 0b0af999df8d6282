package jsonblog

import (
	"fmt"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"  Laundry ", "laundry"},
		{" Stain\t", "stain"},
		{"MiXeD", "mixed"},
	}
	for _, tt := range tests {
		if got := NormalizeQuery(tt.raw); got != tt.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestQueryTooShort(t *testing.T) {
	tests := []struct {
		q    string
		want bool
	}{
		{"", true},
		{"a", true},
		{"ab", false},
		{"é", true},
		{"😀", false}, // a surrogate pair counts as two units
	}
	for _, tt := range tests {
		if got := QueryTooShort(tt.q); got != tt.want {
			t.Errorf("QueryTooShort(%q) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestSearchLimitsAndKeepsOrder(t *testing.T) {
	var posts []Post
	for i := 0; i < 10; i++ {
		title := fmt.Sprintf("Post %d", i)
		if i%3 != 2 {
			title = fmt.Sprintf("Laundry tip %d", i)
		}
		posts = append(posts, testPost(title, fmt.Sprintf("2024-01-%02d", 10-i)))
	}
	// Indexes 0,1,3,4,6,7,9 match: seven posts.
	got := Search(posts, "laundry")
	if len(got) != MaxSearchResults {
		t.Fatalf("got %d results, want %d", len(got), MaxSearchResults)
	}
	want := []string{"Laundry tip 0", "Laundry tip 1", "Laundry tip 3", "Laundry tip 4", "Laundry tip 6"}
	for i, p := range got {
		if p.Title != want[i] {
			t.Errorf("result %d = %q, want %q", i, p.Title, want[i])
		}
	}
}

func TestSearchFields(t *testing.T) {
	byTitle := testPost("Folding Towels", "2024-01-01")
	byExcerpt := testPost("Other", "2024-01-02")
	byExcerpt.Excerpt = "All about DETERGENT"
	byBody := testPost("Third", "2024-01-03")
	byBody.Description = "<p>Use <b>Detergent</b> sparingly</p>"
	byAuthor := testPost("Fourth", "2024-01-04")
	byAuthor.Author = "Detergent Dan"

	got := Search([]Post{byTitle, byExcerpt, byBody, byAuthor}, "detergent")
	if len(got) != 2 || got[0].Title != "Other" || got[1].Title != "Third" {
		t.Errorf("Search = %v, want excerpt and description matches only", titles(got))
	}
	if got := Search([]Post{byTitle}, "towels"); len(got) != 1 {
		t.Errorf("title match missing")
	}
}

func TestSearchNoResults(t *testing.T) {
	got := Search([]Post{testPost("Folding Towels", "2024-01-01")}, "zzz")
	if got == nil || len(got) != 0 {
		t.Errorf("Search = %v, want empty slice", got)
	}
}

func titles(posts []Post) []string {
	var out []string
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}
