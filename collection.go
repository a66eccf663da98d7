package inkstone

import (
	"sort"
	"strings"
)

// Collection exclusively owns the validated posts of one ingestion pass. It
// is rebuilt wholesale on every pass and never partially mutated; every view
// returns a fresh slice.
type Collection struct {
	posts  []*Post // ordered by PubDatetime descending, slug ascending on ties
	bySlug map[string]*Post
}

// NewCollection builds a Collection from validated posts. Slug uniqueness is
// enforced here, at the one point where every post of the pass is visible; a
// duplicate fails the whole pass with a SlugCollisionError naming both source
// files.
func NewCollection(posts []*Post) (*Collection, error) {
	ordered := make([]*Post, len(posts))
	copy(ordered, posts)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].PubDatetime.Equal(ordered[j].PubDatetime) {
			return ordered[i].PubDatetime.After(ordered[j].PubDatetime)
		}
		return ordered[i].Slug < ordered[j].Slug
	})

	bySlug := make(map[string]*Post, len(ordered))
	for _, post := range ordered {
		if existing, ok := bySlug[post.Slug]; ok {
			return nil, &SlugCollisionError{
				Slug:  post.Slug,
				Paths: [2]string{existing.Path, post.Path},
			}
		}
		bySlug[post.Slug] = post
	}

	return &Collection{posts: ordered, bySlug: bySlug}, nil
}

// Len returns the number of posts in the collection, drafts included.
func (c *Collection) Len() int {
	return len(c.posts)
}

// All returns every post, drafts included, ordered by publication time
// descending.
func (c *Collection) All() []*Post {
	out := make([]*Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Published returns All minus drafts.
func (c *Collection) Published() []*Post {
	out := make([]*Post, 0, len(c.posts))
	for _, post := range c.posts {
		if post.IsPublished() {
			out = append(out, post)
		}
	}
	return out
}

// Featured returns the published posts flagged as featured.
func (c *Collection) Featured() []*Post {
	out := make([]*Post, 0)
	for _, post := range c.posts {
		if post.IsPublished() && post.Featured {
			out = append(out, post)
		}
	}
	return out
}

// ByTag returns the published posts carrying the tag, matched
// case-insensitively.
func (c *Collection) ByTag(tag string) []*Post {
	out := make([]*Post, 0)
	for _, post := range c.posts {
		if post.IsPublished() && post.HasTag(tag) {
			out = append(out, post)
		}
	}
	return out
}

// BySlug returns the one post with the given slug, drafts included so that
// preview tooling can reach them. A miss is a NotFoundError, the only
// recoverable error in the taxonomy.
func (c *Collection) BySlug(slug string) (*Post, error) {
	post, ok := c.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Slug: slug}
	}
	return post, nil
}

// Tags returns the distinct tags across published posts, deduplicated
// case-insensitively while preserving the first-seen casing, in first-seen
// order.
func (c *Collection) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, post := range c.posts {
		if !post.IsPublished() {
			continue
		}
		for _, tag := range post.Tags {
			key := strings.ToLower(tag)
			if !seen[key] {
				seen[key] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// TagCounts returns the number of published posts per tag, keyed by the
// lowercased tag.
func (c *Collection) TagCounts() map[string]int {
	counts := make(map[string]int)
	for _, post := range c.posts {
		if !post.IsPublished() {
			continue
		}
		for _, tag := range post.Tags {
			counts[strings.ToLower(tag)]++
		}
	}
	return counts
}
