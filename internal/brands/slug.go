package brands

import (
	"regexp"
	"strings"
)

var (
	slugDrop   = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	slugSpaces = regexp.MustCompile(`\s+`)
)

// Slug derives a filesystem-safe file name from a brand name: lowercase,
// non-word characters stripped, whitespace runs collapsed to single
// underscores. An empty result falls back to "brand".
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugDrop.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "brand"
	}
	return s
}
