// Package textutil holds the slug helpers shared by routing and the catalog
// filters. The rules must stay symmetric: Slugify produces the path segment,
// DecodeSlug recovers the phrase compared against categories/subcategories.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Slugify lower-cases the phrase and replaces whitespace runs with hyphens,
// producing a URL path segment ("Bakkie Covers" -> "bakkie-covers").
func Slugify(phrase string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(phrase)))
	return strings.Join(fields, "-")
}

// DecodeSlug reverses Slugify into a space-joined phrase
// ("bakkie-covers" -> "bakkie covers"). Matching against the decoded phrase
// is case-insensitive, so the original casing is not reconstructed.
func DecodeSlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		fields = append(fields, part)
	}
	return strings.Join(fields, " ")
}

// TitleCase renders a slug for display ("bakkie-covers" -> "Bakkie Covers").
func TitleCase(slug string) string {
	fields := strings.Fields(DecodeSlug(slug))
	for i, field := range fields {
		first, size := utf8.DecodeRuneInString(field)
		if first == utf8.RuneError && size <= 1 {
			continue
		}
		fields[i] = string(unicode.ToUpper(first)) + field[size:]
	}
	return strings.Join(fields, " ")
}
