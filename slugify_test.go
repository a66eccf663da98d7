package inkstone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkstonehq/inkstone"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "title with brackets and numbering",
			input:    "[Az] Day 01: Setup pulumi developer account",
			expected: "az-day-01-setup-pulumi-developer-account",
		},
		{
			name:     "uppercase with spaces",
			input:    "My Post With Spaces",
			expected: "my-post-with-spaces",
		},
		{
			name:     "surrounding whitespace",
			input:    "  hello world  ",
			expected: "hello-world",
		},
		{
			name:     "repeated whitespace collapses",
			input:    "docker    compose   basics",
			expected: "docker-compose-basics",
		},
		{
			name:     "odd characters",
			input:    "AKS & Private Clusters!",
			expected: "aks-and-private-clusters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inkstone.Slugify(tt.input))
		})
	}
}

func TestResolveSlug(t *testing.T) {
	t.Run("explicit postSlug wins", func(t *testing.T) {
		meta := inkstone.PostMeta{Title: "Some Title", PostSlug: "Custom Slug"}
		assert.Equal(t, "custom-slug", inkstone.ResolveSlug(meta))
	})

	t.Run("blank postSlug falls back to title", func(t *testing.T) {
		meta := inkstone.PostMeta{Title: "Some Title", PostSlug: "   "}
		assert.Equal(t, "some-title", inkstone.ResolveSlug(meta))
	})

	t.Run("derived from title", func(t *testing.T) {
		meta := inkstone.PostMeta{Title: "[Az] Day 01: Setup pulumi developer account"}
		assert.Equal(t, "az-day-01-setup-pulumi-developer-account", inkstone.ResolveSlug(meta))
	})
}
