package inkstone

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.etcd.io/bbolt"
)

const (
	boltFile    = "inkstone.db"
	bucketPosts = "posts"
	bucketTags  = "tags"
)

// BoltCache persists the Collection of the last good ingestion pass so that
// preview tooling can reload it without re-reading every source file. The
// snapshot is replaced wholesale on Save, mirroring how the Collection itself
// is rebuilt per pass.
type BoltCache struct {
	db *bbolt.DB
}

// OpenBoltCache opens (or creates) the snapshot database under dataDir.
func OpenBoltCache(dataDir string) (*BoltCache, error) {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := bbolt.Open(filepath.Join(dataDir, boltFile), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketPosts)); err != nil {
			return fmt.Errorf("failed to create posts bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketTags)); err != nil {
			return fmt.Errorf("failed to create tags bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &BoltCache{db: db}, nil
}

// Close closes the snapshot database.
func (c *BoltCache) Close() error {
	return c.db.Close()
}

// Save replaces the stored snapshot with the given collection. Posts are
// keyed by slug; the tags bucket holds per-tag published-post counts.
func (c *BoltCache) Save(col *Collection) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{bucketPosts, bucketTags} {
			if err := tx.DeleteBucket([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to reset %s bucket: %w", bucket, err)
			}
			if _, err := tx.CreateBucket([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to recreate %s bucket: %w", bucket, err)
			}
		}

		posts := tx.Bucket([]byte(bucketPosts))
		for _, post := range col.All() {
			data, err := post.Serialize()
			if err != nil {
				return fmt.Errorf("failed to serialize post %s: %w", post.Slug, err)
			}
			if err := posts.Put([]byte(post.Slug), data); err != nil {
				return fmt.Errorf("failed to put post %s: %w", post.Slug, err)
			}
		}

		tags := tx.Bucket([]byte(bucketTags))
		for tag, count := range col.TagCounts() {
			value := make([]byte, 8)
			binary.BigEndian.PutUint64(value, uint64(count))
			if err := tags.Put([]byte(tag), value); err != nil {
				return fmt.Errorf("failed to put tag count %s: %w", tag, err)
			}
		}

		return nil
	})
}

// Load rebuilds a Collection from the stored snapshot.
func (c *BoltCache) Load() (*Collection, error) {
	var posts []*Post
	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketPosts))
		if b == nil {
			return fmt.Errorf("posts bucket not found")
		}

		return b.ForEach(func(_, data []byte) error {
			post, err := Deserialize(data)
			if err != nil {
				return fmt.Errorf("failed to deserialize post: %w", err)
			}
			posts = append(posts, post)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return NewCollection(posts)
}

// TagCounts returns the stored per-tag published-post counts, keyed by the
// lowercased tag.
func (c *BoltCache) TagCounts() (map[string]int, error) {
	counts := make(map[string]int)
	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketTags))
		if b == nil {
			return fmt.Errorf("tags bucket not found")
		}

		return b.ForEach(func(key, value []byte) error {
			counts[strings.ToLower(string(key))] = int(binary.BigEndian.Uint64(value))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}
