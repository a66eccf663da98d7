package inkstone

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

const bleveFile = "inkstone.bleve"

// searchDoc is the shape indexed per post. Drafts are never indexed; only
// what the published site exposes is searchable.
type searchDoc struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	PubDatetime time.Time `json:"pubDatetime"`
}

// SearchIndex is a full-text index over the published posts of one
// Collection. Like the Collection it is rebuilt wholesale per pass.
type SearchIndex struct {
	index bleve.Index
	col   *Collection
}

// NewSearchIndex builds a fresh bleve index for the collection under
// dataDir, replacing any index from a previous pass.
func NewSearchIndex(dataDir string, col *Collection) (*SearchIndex, error) {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	blevePath := filepath.Join(dataDir, bleveFile)
	if err := os.RemoveAll(blevePath); err != nil {
		return nil, fmt.Errorf("failed to remove stale search index: %w", err)
	}

	index, err := bleve.NewUsing(blevePath, defineMapping(), bleve.Config.DefaultIndexType, bleve.Config.DefaultKVStore, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	batch := index.NewBatch()
	for _, post := range col.Published() {
		doc := searchDoc{
			Slug:        post.Slug,
			Title:       post.Title,
			Author:      post.Author,
			Description: post.Description,
			Body:        post.Body,
			Tags:        post.Tags,
			Featured:    post.Featured,
			PubDatetime: post.PubDatetime,
		}
		if err := batch.Index(post.Slug, doc); err != nil {
			return nil, fmt.Errorf("failed to index post %s: %w", post.Slug, err)
		}
	}

	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to commit search batch: %w", err)
	}

	return &SearchIndex{index: index, col: col}, nil
}

// Close closes the underlying bleve index.
func (s *SearchIndex) Close() error {
	return s.index.Close()
}

// Search runs a query-string search over the published posts and returns the
// requested page of matches plus the total hit count. Hits are resolved back
// against the Collection so callers get full Post records.
func (s *SearchIndex) Search(query string, page, size int) ([]*Post, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	q := bleve.NewQueryStringQuery(query)
	request := bleve.NewSearchRequestOptions(q, size, (page-1)*size, false)
	request.SortBy([]string{"-_score", "-pubDatetime", "slug"})

	result, err := s.index.Search(request)
	if err != nil {
		return nil, 0, fmt.Errorf("search failed: %w", err)
	}

	posts := make([]*Post, 0, len(result.Hits))
	for _, hit := range result.Hits {
		post, err := s.col.BySlug(hit.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to resolve search hit %s: %w", hit.ID, err)
		}
		posts = append(posts, post)
	}

	return posts, int(result.Total), nil
}

func defineMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	docMapping.AddFieldMappingsAt("slug", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("title", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("author", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("description", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("body", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("tags", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("featured", bleve.NewBooleanFieldMapping())
	docMapping.AddFieldMappingsAt("pubDatetime", bleve.NewDateTimeFieldMapping())

	indexMapping.AddDocumentMapping("post", docMapping)
	return indexMapping
}
