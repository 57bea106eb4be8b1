package domain

import (
	"strings"
)

// NormalizeKeyword prepares a search keyword for the project search endpoint:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved; the server matches case-insensitively.
func NormalizeKeyword(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// tagAliases maps display names that differ from the stored tag value.
var tagAliases = map[string]string{
	"spring boot": "springboot",
}

// NormalizeTag converts a display tag (e.g. "Spring Boot") into the value the
// server stores (e.g. "springboot"): lowercased with all whitespace removed.
func NormalizeTag(display string) string {
	t := strings.ToLower(strings.Join(strings.Fields(display), " "))
	if t == "" {
		return ""
	}
	if alias, ok := tagAliases[t]; ok {
		return alias
	}
	return strings.ReplaceAll(t, " ", "")
}

// NormalizeTags applies NormalizeTag to every element, dropping empty values
// and duplicates while keeping the first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeTag(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
