package viewer

import (
	"strings"

	"backend-lumashare/internal/gallery"
)

// CategoryAll disables category narrowing.
const CategoryAll = "all"

// Matches reports whether an already-loaded item passes the client-side
// search term and category filter. Search is a case-insensitive substring
// match over title, description, category and tags. This never refetches.
func Matches(item gallery.Item, term, category string) bool {
	if category != "" && category != CategoryAll &&
		!strings.Contains(strings.ToLower(item.Category), strings.ToLower(category)) {
		return false
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Category), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Apply filters a loaded item list down to those matching term and
// category, preserving order.
func Apply(items []gallery.Item, term, category string) []gallery.Item {
	var out []gallery.Item
	for _, it := range items {
		if Matches(it, term, category) {
			out = append(out, it)
		}
	}
	return out
}
