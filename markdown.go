package inkstone

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"go.abhg.dev/goldmark/frontmatter"
)

// MarkdownParserFunc converts one raw markdown source file into a Post.
type MarkdownParserFunc func(path string, input []byte) (*Post, error)

// DefaultMarkdownParser returns a MarkdownParserFunc that uses the default goldmark parser with the following extensions:
// - GFM
// - Typographer
// - Footnote
// - Frontmatter
// It also enables the following parser options:
// - AutoHeadingID
// - Attribute
func DefaultMarkdownParser() MarkdownParserFunc {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			extension.Footnote,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
	)

	return func(path string, input []byte) (*Post, error) {
		return MarkdownToPost(md, path, input)
	}
}

// MarkdownToPost validates the frontmatter of one source file and renders
// its body to HTML. The frontmatter extension keeps the leading metadata
// block out of the rendered output; any second, concatenated block further
// down renders as body like the rest of the file.
func MarkdownToPost(md goldmark.Markdown, path string, input []byte) (*Post, error) {
	meta, body, err := ParseFrontmatter(path, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := md.Convert(input, &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("%s: failed to convert markdown: %w", path, err)
	}

	html := buf.String()
	return &Post{
		Path:        path,
		Slug:        ResolveSlug(meta),
		Author:      meta.Author,
		Title:       meta.Title,
		PubDatetime: meta.PubDatetime,
		Featured:    meta.Featured,
		Draft:       meta.Draft,
		Tags:        meta.Tags,
		Description: meta.Description,
		OGImage:     meta.OGImage,
		Body:        body,
		Content:     html,
		ETag:        GenerateETag(html),
		ReadTime:    EstimateReadingTime(body),
	}, nil
}

// GenerateETag generates an ETag for the content.
func GenerateETag(content string) string {
	hash := sha256.New()
	hash.Write([]byte(content))
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// EstimateReadingTime estimates the reading time of the content.
func EstimateReadingTime(content string) string {
	// Define reading speed in words per minute
	const wordsPerMinute = float64(200)

	words := float64(len(strings.Fields(content)))
	minutes := words / wordsPerMinute

	if minutes < 1 {
		return "< 1 min"
	} else if minutes < 60 {
		return fmt.Sprintf("%d min", int(minutes))
	} else {
		hours := minutes / 60
		minutes = minutes - (hours * 60)
		return fmt.Sprintf("%d hr %d min", int(hours), int(minutes))
	}
}
