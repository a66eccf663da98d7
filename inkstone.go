// Package inkstone ingests a directory of markdown blog posts with YAML or
// TOML frontmatter, validates their schema, resolves unique URL-safe slugs,
// and builds the ordered, queryable collection a static-site publisher
// renders from.
package inkstone

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Inkstone holds the outcome of one successful build pass: the validated
// collection plus the snapshot cache and search index derived from it. A
// failed pass produces no Inkstone; there is no partially-built state.
type Inkstone struct {
	cfg    SiteConfig
	logger *slog.Logger
	col    *Collection
	cache  *BoltCache
	search *SearchIndex
}

// BuildOptions configures one build pass.
type BuildOptions struct {
	Config SiteConfig         // Config holds the site settings. ContentDir and DataDir must resolve.
	Logger *slog.Logger       // Logger is used across the pipeline. Default is a debug logger to stderr.
	Parser MarkdownParserFunc // Parser overrides the default goldmark parser.
}

// Build runs a full pipeline pass: ingest and validate every source file,
// build the Collection, persist the snapshot, and rebuild the search index.
// Any ingestion error aborts the pass with nothing persisted or returned.
func Build(ctx context.Context, opts BuildOptions) (*Inkstone, error) {
	opts.Config.setDefaults()
	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}

	ingestor, err := NewIngestor(Options{
		ContentDir: opts.Config.ContentDir,
		Logger:     opts.Logger,
		Parser:     opts.Parser,
	})
	if err != nil {
		return nil, err
	}

	col, err := ingestor.Ingest(ctx)
	if err != nil {
		return nil, err
	}

	cache, err := OpenBoltCache(opts.Config.DataDir)
	if err != nil {
		return nil, err
	}

	if err := cache.Save(col); err != nil {
		_ = cache.Close()
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	search, err := NewSearchIndex(opts.Config.DataDir, col)
	if err != nil {
		_ = cache.Close()
		return nil, err
	}

	return &Inkstone{
		cfg:    opts.Config,
		logger: opts.Logger,
		col:    col,
		cache:  cache,
		search: search,
	}, nil
}

// Collection returns the validated collection of this pass.
func (s *Inkstone) Collection() *Collection {
	return s.col
}

// Search runs a full-text query over the published posts.
func (s *Inkstone) Search(query string, page, size int) ([]*Post, int, error) {
	return s.search.Search(query, page, size)
}

// WriteRSS writes the RSS feed for the published posts to w.
func (s *Inkstone) WriteRSS(w io.Writer) error {
	return WriteRSS(w, s.cfg, s.col.Published())
}

// WriteSitemap writes the sitemap for the published posts to w.
func (s *Inkstone) WriteSitemap(w io.Writer) error {
	return WriteSitemap(w, s.cfg, s.col.Published())
}

// Close releases the snapshot cache and search index.
func (s *Inkstone) Close() error {
	if err := s.cache.Close(); err != nil {
		return err
	}
	return s.search.Close()
}
