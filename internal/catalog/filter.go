package catalog

import "strings"

// Normalize trims and lowercases a filter query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Haystack is the lowercased text a filter is matched against: id, title,
// description and tags joined by single spaces. Missing fields contribute
// an empty string.
func Haystack(g Game) string {
	parts := make([]string, 0, 3+len(g.Tags))
	parts = append(parts, g.ID, g.Title, g.Description)
	parts = append(parts, g.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Matches reports whether g passes the already-normalized filter.
func Matches(g Game, normalized string) bool {
	if normalized == "" {
		return true
	}
	return strings.Contains(Haystack(g), normalized)
}

// Filter returns the games whose haystack contains query after
// normalization, preserving manifest order. An empty query returns m
// itself.
func Filter(m Manifest, query string) Manifest {
	f := Normalize(query)
	if f == "" {
		return m
	}
	out := make(Manifest, 0, len(m))
	for _, g := range m {
		if Matches(g, f) {
			out = append(out, g)
		}
	}
	return out
}
