package inkstone_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstonehq/inkstone"
)

func TestDefaultSiteConfig(t *testing.T) {
	cfg := inkstone.DefaultSiteConfig()
	assert.Equal(t, "Blog", cfg.Title)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadSiteConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkstone.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Ops Notes"
description = "Tutorials"
baseURL = "https://example.com"
author = "Sat Naing"
contentDir = "posts"
`), 0644))

	cfg, err := inkstone.LoadSiteConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Ops Notes", cfg.Title)
	assert.Equal(t, "Tutorials", cfg.Description)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "Sat Naing", cfg.Author)
	assert.Equal(t, "posts", cfg.ContentDir)

	// Unset keys fall back to defaults.
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoadSiteConfig_MissingFile(t *testing.T) {
	_, err := inkstone.LoadSiteConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
