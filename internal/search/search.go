// Package search implements the directory's name search: a pure,
// order-preserving filter over an already-fetched entity collection.
package search

import "strings"

// Matches reports whether name matches query.
//
// The rules follow the search box behavior:
//   - an empty query matches nothing;
//   - a single-character query matches when any whitespace-delimited token
//     of the name contains that character, case-insensitively;
//   - a longer query matches when the name contains it as a contiguous
//     substring, case-insensitively.
func Matches(name, query string) bool {
	query = strings.ToLower(query)

	switch {
	case len(query) == 0:
		return false
	case len(query) == 1:
		for _, token := range strings.Fields(strings.ToLower(name)) {
			if strings.Contains(token, query) {
				return true
			}
		}
		return false
	default:
		return strings.Contains(strings.ToLower(name), query)
	}
}

// Filter returns the items whose name matches query. Result order is the
// first-seen order of items; entries sharing a key are reported once.
func Filter[T any](items []T, key func(T) int, name func(T) string, query string) []T {
	matched := make([]T, 0)
	seen := make(map[int]struct{})

	for _, item := range items {
		if !Matches(name(item), query) {
			continue
		}
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		matched = append(matched, item)
	}

	return matched
}
