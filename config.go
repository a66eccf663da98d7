package inkstone

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// SiteConfig holds the per-build site settings. It is passed explicitly into
// the pieces that need it and scoped to one build invocation; there is no
// ambient global state.
type SiteConfig struct {
	Title       string `toml:"title"`       // Site title for feed channel metadata
	Description string `toml:"description"` // Site description for feed channel metadata
	BaseURL     string `toml:"baseURL"`     // Canonical URL the publisher serves from
	Author      string `toml:"author"`      // Default author for channel metadata
	ContentDir  string `toml:"contentDir"`  // Directory of markdown sources
	DataDir     string `toml:"dataDir"`     // Directory for the snapshot cache and search index
}

func (c *SiteConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "Blog"
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
}

// DefaultSiteConfig returns a SiteConfig with all defaults applied.
func DefaultSiteConfig() SiteConfig {
	var c SiteConfig
	c.setDefaults()
	return c
}

// LoadSiteConfig reads a TOML site configuration file and applies defaults
// for anything left unset.
func LoadSiteConfig(path string) (SiteConfig, error) {
	var c SiteConfig
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return SiteConfig{}, fmt.Errorf("failed to load site config %s: %w", path, err)
	}
	c.setDefaults()
	return c, nil
}
