package inkstone

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type FrontmatterFormat string

const (
	FrontmatterYAML FrontmatterFormat = "yaml"
	FrontmatterTOML FrontmatterFormat = "toml"
)

const (
	yamlDelimiter = "---"
	tomlDelimiter = "+++"
)

// PostMeta is the typed frontmatter of a post.
type PostMeta struct {
	Author      string    `yaml:"author" toml:"author"`
	PubDatetime time.Time `yaml:"pubDatetime" toml:"pubDatetime"`
	Title       string    `yaml:"title" toml:"title"`
	PostSlug    string    `yaml:"postSlug,omitempty" toml:"postSlug,omitempty"`
	Featured    bool      `yaml:"featured" toml:"featured"`
	Draft       bool      `yaml:"draft" toml:"draft"`
	Tags        []string  `yaml:"tags,omitempty" toml:"tags,omitempty"`
	Description string    `yaml:"description,omitempty" toml:"description,omitempty"`
	OGImage     string    `yaml:"ogImage,omitempty" toml:"ogImage,omitempty"`
}

// requiredFields is checked in a fixed order so that a file missing several
// fields always reports the same one.
var requiredFields = []string{"author", "pubDatetime", "title", "draft"}

// pubDatetime values may arrive as native timestamps from the decoder or as
// strings in one of these layouts.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SplitFrontmatter separates the leading frontmatter block from the body.
// The block must start on the first line of the file, delimited by "---"
// (YAML) or "+++" (TOML) lines. Only the first block is treated as metadata;
// everything after its closing delimiter, including any later "---" block
// from a duplicated draft, is returned verbatim as body.
func SplitFrontmatter(raw []byte) (format FrontmatterFormat, meta []byte, body []byte, ok bool) {
	var delim string
	switch {
	case hasDelimiterPrefix(raw, yamlDelimiter):
		format = FrontmatterYAML
		delim = yamlDelimiter
	case hasDelimiterPrefix(raw, tomlDelimiter):
		format = FrontmatterTOML
		delim = tomlDelimiter
	default:
		return "", nil, raw, false
	}

	rest := raw[len(delim):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return "", nil, raw, false
	}
	rest = rest[nl+1:]

	// An empty block closes on the very next line.
	if hasDelimiterPrefix(rest, delim) {
		return format, nil, afterDelimiterLine(rest, delim), true
	}

	// The closing delimiter is the first line holding exactly delim. Longer
	// runs, such as a "----" rule, do not close the block.
	offset := 0
	for {
		end := bytes.Index(rest[offset:], []byte("\n"+delim))
		if end < 0 {
			return "", nil, raw, false
		}
		end += offset
		if hasDelimiterPrefix(rest[end+1:], delim) {
			meta = rest[:end+1]
			body = afterDelimiterLine(rest[end+1:], delim)
			return format, meta, body, true
		}
		offset = end + 1
	}
}

// hasDelimiterPrefix reports whether raw starts with a line holding exactly
// delim, allowing a trailing carriage return.
func hasDelimiterPrefix(raw []byte, delim string) bool {
	if !bytes.HasPrefix(raw, []byte(delim)) {
		return false
	}
	rest := bytes.TrimPrefix(raw[len(delim):], []byte("\r"))
	return len(rest) == 0 || rest[0] == '\n'
}

// afterDelimiterLine skips the closing delimiter line plus the conventional
// blank line that follows it.
func afterDelimiterLine(raw []byte, delim string) []byte {
	rest := bytes.TrimPrefix(raw, []byte(delim))
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	rest = bytes.TrimPrefix(rest, []byte("\n"))
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	rest = bytes.TrimPrefix(rest, []byte("\n"))
	return rest
}

// ParseFrontmatter extracts and validates the frontmatter of one source
// file. It returns the typed metadata and the raw markdown body. All errors
// carry path so the author can find the file to fix.
func ParseFrontmatter(path string, raw []byte) (PostMeta, string, error) {
	format, metaBytes, body, ok := SplitFrontmatter(raw)
	if !ok {
		// No frontmatter block at all behaves like an empty one: the first
		// required field is reported missing.
		return PostMeta{}, "", &SchemaError{Path: path, Field: requiredFields[0]}
	}

	fields := map[string]any{}
	switch format {
	case FrontmatterTOML:
		if err := toml.Unmarshal(metaBytes, &fields); err != nil {
			return PostMeta{}, "", &MalformedFieldError{Path: path, Field: "frontmatter", Value: err.Error()}
		}
	default:
		if err := yaml.Unmarshal(metaBytes, &fields); err != nil {
			return PostMeta{}, "", &MalformedFieldError{Path: path, Field: "frontmatter", Value: err.Error()}
		}
	}

	meta, err := metaFromFields(path, fields)
	if err != nil {
		return PostMeta{}, "", err
	}

	return meta, string(body), nil
}

// metaFromFields coerces the raw decoded map into a PostMeta, enforcing the
// required-field schema.
func metaFromFields(path string, fields map[string]any) (PostMeta, error) {
	for _, field := range requiredFields {
		if _, present := fields[field]; !present {
			return PostMeta{}, &SchemaError{Path: path, Field: field}
		}
	}

	var meta PostMeta
	var err error

	if meta.Author, err = stringField(path, fields, "author"); err != nil {
		return PostMeta{}, err
	}

	if meta.Title, err = stringField(path, fields, "title"); err != nil {
		return PostMeta{}, err
	}
	if strings.TrimSpace(meta.Title) == "" {
		return PostMeta{}, &MalformedFieldError{Path: path, Field: "title", Value: meta.Title}
	}

	if meta.PubDatetime, err = timeField(path, fields, "pubDatetime"); err != nil {
		return PostMeta{}, err
	}

	if meta.Draft, err = boolField(path, fields, "draft"); err != nil {
		return PostMeta{}, err
	}

	if _, present := fields["featured"]; present {
		if meta.Featured, err = boolField(path, fields, "featured"); err != nil {
			return PostMeta{}, err
		}
	}

	for _, field := range []string{"postSlug", "description", "ogImage"} {
		if _, present := fields[field]; !present {
			continue
		}
		value, err := stringField(path, fields, field)
		if err != nil {
			return PostMeta{}, err
		}
		switch field {
		case "postSlug":
			meta.PostSlug = value
		case "description":
			meta.Description = value
		case "ogImage":
			meta.OGImage = value
		}
	}

	if raw, present := fields["tags"]; present {
		if meta.Tags, err = tagsField(path, raw); err != nil {
			return PostMeta{}, err
		}
	}

	return meta, nil
}

func stringField(path string, fields map[string]any, field string) (string, error) {
	value, ok := fields[field].(string)
	if !ok {
		return "", &MalformedFieldError{Path: path, Field: field, Value: fmt.Sprintf("%v", fields[field])}
	}
	return value, nil
}

func boolField(path string, fields map[string]any, field string) (bool, error) {
	value, ok := fields[field].(bool)
	if !ok {
		return false, &MalformedFieldError{Path: path, Field: field, Value: fmt.Sprintf("%v", fields[field])}
	}
	return value, nil
}

func timeField(path string, fields map[string]any, field string) (time.Time, error) {
	switch value := fields[field].(type) {
	case time.Time:
		return value, nil
	case string:
		for _, layout := range datetimeLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, &MalformedFieldError{Path: path, Field: field, Value: value}
	default:
		return time.Time{}, &MalformedFieldError{Path: path, Field: field, Value: fmt.Sprintf("%v", value)}
	}
}

// tagsField accepts a sequence of strings or a single scalar string, which is
// normalized to a one-element slice. Empty entries are rejected rather than
// dropped, since they indicate a typo in the source.
func tagsField(path string, raw any) ([]string, error) {
	var tags []string

	switch value := raw.(type) {
	case string:
		tags = []string{value}
	case []any:
		tags = make([]string, 0, len(value))
		for _, entry := range value {
			tag, ok := entry.(string)
			if !ok {
				return nil, &MalformedFieldError{Path: path, Field: "tags", Value: fmt.Sprintf("%v", entry)}
			}
			tags = append(tags, tag)
		}
	case []string:
		tags = value
	default:
		return nil, &MalformedFieldError{Path: path, Field: "tags", Value: fmt.Sprintf("%v", raw)}
	}

	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return nil, &MalformedFieldError{Path: path, Field: "tags", Value: tag}
		}
	}

	return tags, nil
}

// Frontmatter serializes the metadata back into a delimited frontmatter
// block. ParseFrontmatter on the result yields an equal PostMeta.
func (m PostMeta) Frontmatter(format FrontmatterFormat) (string, error) {
	switch format {
	case FrontmatterYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML frontmatter: %w", err)
		}
		return fmt.Sprintf("%s\n%s%s\n", yamlDelimiter, data, yamlDelimiter), nil

	case FrontmatterTOML:
		var buf strings.Builder
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return "", fmt.Errorf("failed to marshal TOML frontmatter: %w", err)
		}
		return fmt.Sprintf("%s\n%s%s\n", tomlDelimiter, buf.String(), tomlDelimiter), nil

	default:
		return "", fmt.Errorf("unsupported frontmatter format: %s", format)
	}
}
