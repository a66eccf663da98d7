package inkstone

import (
	"encoding/json"
	"strings"
	"time"
)

// Post is one validated markdown article. A Post is produced fresh on every
// ingestion pass and never mutated afterwards.
type Post struct {
	Path        string    `json:"path"`        // Path is the source file path
	Slug        string    `json:"slug"`        // Slug is the resolved URL-safe identifier
	Author      string    `json:"author"`      // Author is the post author
	Title       string    `json:"title"`       // Title is the display title
	PubDatetime time.Time `json:"pubDatetime"` // PubDatetime is the publication instant
	Featured    bool      `json:"featured"`    // Featured is true if the post is featured
	Draft       bool      `json:"draft"`       // Draft is true if the post is hidden from public listings
	Tags        []string  `json:"tags"`        // Tags preserves the authored tag order and casing
	Description string    `json:"description"` // Description is the summary used in listings and feeds
	OGImage     string    `json:"ogImage"`     // OGImage is the optional social preview image URL
	Body        string    `json:"body"`        // Body is the raw markdown after the frontmatter block
	Content     string    `json:"content"`     // Content is the rendered HTML of the body
	ETag        string    `json:"etag"`        // ETag is the entity tag of the rendered content
	ReadTime    string    `json:"readTime"`    // ReadTime is the estimated reading time
}

// Meta returns the frontmatter view of the post, suitable for serializing
// back into a source file.
func (p *Post) Meta() PostMeta {
	return PostMeta{
		Author:      p.Author,
		PubDatetime: p.PubDatetime,
		Title:       p.Title,
		PostSlug:    p.Slug,
		Featured:    p.Featured,
		Draft:       p.Draft,
		Tags:        p.Tags,
		Description: p.Description,
		OGImage:     p.OGImage,
	}
}

// IsPublished returns true if the post belongs in public listings.
func (p *Post) IsPublished() bool {
	return !p.Draft
}

// HasTag returns true if the post carries the tag, compared
// case-insensitively.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// HasTags returns true if the post has any tags.
func (p *Post) HasTags() bool {
	return len(p.Tags) > 0
}

// HasDescription returns true if the post has a description.
func (p *Post) HasDescription() bool {
	return p.Description != ""
}

// HasOGImage returns true if the post has a social preview image.
func (p *Post) HasOGImage() bool {
	return p.OGImage != ""
}

// PublishedDate returns the publication date in the format Jan 2, 2006.
func (p *Post) PublishedDate() string {
	if p.PubDatetime.IsZero() {
		return ""
	}
	return p.PubDatetime.Format("Jan 2, 2006")
}

// PublishedYear returns the year of the publication date.
func (p *Post) PublishedYear() int {
	if p.PubDatetime.IsZero() {
		return 0
	}
	return p.PubDatetime.Year()
}

// Serialize serializes the post to a byte slice.
func (p *Post) Serialize() ([]byte, error) {
	return json.Marshal(p)
}

// Deserialize deserializes the byte slice to a post.
func Deserialize(data []byte) (*Post, error) {
	var post Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
