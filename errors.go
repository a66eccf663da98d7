package inkstone

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField   = errors.New("missing required frontmatter field")
	ErrMalformedField = errors.New("malformed frontmatter field")
	ErrSlugCollision  = errors.New("slug collision")
	ErrPostNotFound   = errors.New("post not found")
)

// SchemaError reports a required frontmatter field that is absent from a
// source file. It unwraps to ErrMissingField.
type SchemaError struct {
	Path  string
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required frontmatter field %q", e.Path, e.Field)
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingField
}

// MalformedFieldError reports a frontmatter field that is present but could
// not be coerced to its expected type. It unwraps to ErrMalformedField.
type MalformedFieldError struct {
	Path  string
	Field string
	Value string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("%s: frontmatter field %q has malformed value %q", e.Path, e.Field, e.Value)
}

func (e *MalformedFieldError) Unwrap() error {
	return ErrMalformedField
}

// SlugCollisionError reports two source files whose posts resolved to the
// same slug. Collisions are a hard error: silently suffixing either post
// would break external links, so the author has to rename one. It unwraps to
// ErrSlugCollision.
type SlugCollisionError struct {
	Slug  string
	Paths [2]string
}

func (e *SlugCollisionError) Error() string {
	return fmt.Sprintf("slug %q resolved by both %s and %s", e.Slug, e.Paths[0], e.Paths[1])
}

func (e *SlugCollisionError) Unwrap() error {
	return ErrSlugCollision
}

// NotFoundError reports a BySlug lookup that matched nothing. Unlike the
// ingestion errors above, this is a normal query-time condition the caller is
// expected to handle. It unwraps to ErrPostNotFound.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no post with slug %q", e.Slug)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPostNotFound
}
