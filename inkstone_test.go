package inkstone_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstonehq/inkstone"
)

func TestBuild(t *testing.T) {
	contentDir := t.TempDir()
	dataDir := t.TempDir()

	writePost(t, contentDir, "aks.md",
		postFrontmatter("Private AKS Clusters", day(5), "tags:\n  - AKS\n  - Pulumi\n"),
		"Provisioning a private AKS cluster with pulumi.\n")
	writePost(t, contentDir, "docker.md",
		postFrontmatter("Docker Basics", day(2), "tags:\n  - Docker\n"),
		"Images and containers.\n")

	site, err := inkstone.Build(context.Background(), inkstone.BuildOptions{
		Config: inkstone.SiteConfig{
			Title:      "Ops Notes",
			BaseURL:    "https://example.com",
			ContentDir: contentDir,
			DataDir:    dataDir,
		},
	})
	require.NoError(t, err)

	col := site.Collection()
	assert.Equal(t, []string{"private-aks-clusters", "docker-basics"}, slugs(col.Published()))

	posts, total, err := site.Search("pulumi", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, "private-aks-clusters", posts[0].Slug)

	var rss bytes.Buffer
	require.NoError(t, site.WriteRSS(&rss))
	assert.Contains(t, rss.String(), "https://example.com/posts/docker-basics")

	var sitemap bytes.Buffer
	require.NoError(t, site.WriteSitemap(&sitemap))
	assert.Contains(t, sitemap.String(), "https://example.com/posts/private-aks-clusters")

	require.NoError(t, site.Close())

	// The snapshot of this pass is reloadable on its own once the build
	// releases it.
	cache, err := inkstone.OpenBoltCache(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestBuild_AbortsOnValidationError(t *testing.T) {
	contentDir := t.TempDir()
	dataDir := t.TempDir()

	writePost(t, contentDir, "good.md", postFrontmatter("Good", day(1), ""), "body\n")
	writePost(t, contentDir, "bad.md",
		"pubDatetime: 2025-01-01T12:00:00Z\ntitle: Missing author\ndraft: false\n", "body\n")

	_, err := inkstone.Build(context.Background(), inkstone.BuildOptions{
		Config: inkstone.SiteConfig{ContentDir: contentDir, DataDir: dataDir},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, inkstone.ErrMissingField)

	// Nothing was persisted for the failed pass.
	assert.NoFileExists(t, filepath.Join(dataDir, "inkstone.db"))
}
