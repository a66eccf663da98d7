package inkstone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstonehq/inkstone"
)

func TestPost_SerializeDeserialize(t *testing.T) {
	post := &inkstone.Post{
		Path:        "posts/test.md",
		Slug:        "test",
		Author:      "author1",
		Title:       "Test",
		PubDatetime: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"tag1"},
	}

	data, err := post.Serialize()
	require.NoError(t, err)
	require.NotNil(t, data)

	decoded, err := inkstone.Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, post, decoded)
}

func TestPost_Methods(t *testing.T) {
	post := &inkstone.Post{
		Slug:        "test",
		Title:       "Test",
		PubDatetime: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"AKS", "Pulumi"},
		Description: "summary",
		OGImage:     "/img.png",
	}

	assert.True(t, post.IsPublished())
	assert.True(t, post.HasTags())
	assert.True(t, post.HasTag("aks"))
	assert.True(t, post.HasTag("AKS"))
	assert.False(t, post.HasTag("docker"))
	assert.True(t, post.HasDescription())
	assert.True(t, post.HasOGImage())
	assert.Equal(t, "Aug 1, 2024", post.PublishedDate())
	assert.Equal(t, 2024, post.PublishedYear())

	draft := &inkstone.Post{Slug: "d", Draft: true}
	assert.False(t, draft.IsPublished())
	assert.False(t, draft.HasTags())
	assert.Empty(t, draft.PublishedDate())
	assert.Zero(t, draft.PublishedYear())
}

func TestPost_Meta(t *testing.T) {
	post := &inkstone.Post{
		Slug:        "round-trip",
		Author:      "a",
		Title:       "Round Trip",
		PubDatetime: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Featured:    true,
		Tags:        []string{"AKS"},
		Description: "d",
		OGImage:     "/i.png",
	}

	meta := post.Meta()
	assert.Equal(t, post.Author, meta.Author)
	assert.Equal(t, post.Title, meta.Title)
	assert.Equal(t, post.Slug, meta.PostSlug)
	assert.Equal(t, post.Tags, meta.Tags)
	assert.Equal(t, "round-trip", inkstone.ResolveSlug(meta))
}

func TestEstimateReadingTime(t *testing.T) {
	assert.Equal(t, "< 1 min", inkstone.EstimateReadingTime("a few words"))

	long := ""
	for i := 0; i < 600; i++ {
		long += "word "
	}
	assert.Equal(t, "3 min", inkstone.EstimateReadingTime(long))
}

func TestGenerateETag(t *testing.T) {
	a := inkstone.GenerateETag("content")
	b := inkstone.GenerateETag("content")
	c := inkstone.GenerateETag("different")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
