package jsonblog

// Shadowed is a post that can never be reached because an earlier post in
// the collection has the same route.
type Shadowed struct {
	Index   int // position of the unreachable post
	ByIndex int // position of the post that wins
	Path    string
}

// Report summarizes problems in a post collection.
type Report struct {
	Posts      int
	Shadowed   []Shadowed
	EmptySlugs []int // positions of posts whose title yields no slug
}

// OK reports whether the collection has no problems.
func (r Report) OK() bool {
	return len(r.Shadowed) == 0 && len(r.EmptySlugs) == 0
}

// CheckPosts inspects posts for routes that collide and titles that produce
// an empty slug.
func CheckPosts(posts []Post) Report {
	r := Report{Posts: len(posts)}
	first := make(map[string]int, len(posts))
	for i, p := range posts {
		if p.Slug() == "" {
			r.EmptySlugs = append(r.EmptySlugs, i)
		}
		path := p.Path()
		if j, ok := first[path]; ok {
			r.Shadowed = append(r.Shadowed, Shadowed{Index: i, ByIndex: j, Path: path})
			continue
		}
		first[path] = i
	}
	return r
}
