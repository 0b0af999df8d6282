package jsonblog

import "strings"

// MaxSlugLen is the longest slug Slug returns.
const MaxSlugLen = 50

// Slug converts a title to the slug used in post URLs.
//
// The title is lowercased and every rune other than an ASCII word character,
// whitespace or a hyphen is dropped. Each run of whitespace and hyphens then
// becomes a single hyphen. The result is cut to MaxSlugLen and one trailing
// hyphen left by the cut is removed. Listing links, search links and post
// lookup must all agree on this output, so there is exactly one copy of it.
func Slug(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	hyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case isWordRune(r):
			b.WriteRune(r)
			hyphen = false
		case r == '-' || isSpace(r):
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	// Only ASCII survives the filter, so byte offsets are character offsets.
	s := b.String()
	if len(s) > MaxSlugLen {
		s = s[:MaxSlugLen]
	}
	return strings.TrimSuffix(s, "-")
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

// isSpace reports whether r is whitespace as browsers define it for
// regular expressions and String.prototype.trim.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}
