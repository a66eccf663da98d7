package inkstone

import (
	"strings"

	"github.com/gosimple/slug"
)

// Slugify normalizes s into a URL-safe slug: lowercased, trimmed,
// whitespace and punctuation collapsed to single hyphens.
func Slugify(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

// ResolveSlug returns the slug for a post's metadata. An explicit, non-empty
// postSlug wins; otherwise the slug is derived from the title. Both paths go
// through the same normalization, so an authored slug with stray casing or
// whitespace still comes out URL-safe.
func ResolveSlug(meta PostMeta) string {
	if strings.TrimSpace(meta.PostSlug) != "" {
		return Slugify(meta.PostSlug)
	}
	return Slugify(meta.Title)
}
