package inkstone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Options configures a new Ingestor.
type Options struct {
	ContentDir string             // ContentDir is the directory holding the markdown sources. Required.
	Logger     *slog.Logger       // Logger is the logger used by the pipeline. Default is a debug logger to stderr.
	Parser     MarkdownParserFunc // Parser converts one source file to a Post. A default goldmark parser is used if not provided.
}

// Ingestor runs one batch ingestion pass over a directory of markdown
// sources: parse, validate, resolve slugs, build the Collection. Any
// validation failure aborts the pass; a partially-correct Collection is never
// returned.
type Ingestor struct {
	contentDir string
	logger     *slog.Logger
	parser     MarkdownParserFunc
}

func NewIngestor(opts Options) (*Ingestor, error) {
	if opts.ContentDir == "" {
		return nil, errors.New("ContentDir is required")
	}

	if opts.Parser == nil {
		opts.Parser = DefaultMarkdownParser()
	}

	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}

	return &Ingestor{
		contentDir: opts.ContentDir,
		logger:     opts.Logger,
		parser:     opts.Parser,
	}, nil
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelDebug,
		}))
}

// Ingest reads every .md file under ContentDir and builds the Collection for
// this pass. The first validation error aborts the walk and is returned
// as-is, carrying the source path and field for the author to fix.
func (in *Ingestor) Ingest(ctx context.Context) (*Collection, error) {
	posts, errs := in.walk(ctx)

	var all []*Post
	for post := range posts {
		in.logger.Debug("ingested post",
			slog.String("path", post.Path),
			slog.String("slug", post.Slug))
		all = append(all, post)
	}

	for err := range errs {
		return nil, err
	}

	col, err := NewCollection(all)
	if err != nil {
		return nil, err
	}

	in.logger.Info("ingestion complete",
		slog.Int("posts", col.Len()),
		slog.Int("published", len(col.Published())))

	return col, nil
}

// walk streams parsed posts out of ContentDir. The walk stops at the first
// error, which is delivered on the error channel after the post channel
// closes.
func (in *Ingestor) walk(ctx context.Context) (<-chan *Post, <-chan error) {
	posts := make(chan *Post)
	errs := make(chan error, 1)

	go func() {
		defer close(posts)
		defer close(errs)

		err := filepath.WalkDir(in.contentDir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".md" {
				return nil
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			post, err := in.parser(path, content)
			if err != nil {
				return err
			}

			select {
			case posts <- post:
			case <-ctx.Done():
				return ctx.Err()
			}

			return nil
		})

		if err != nil {
			errs <- err
		}
	}()

	return posts, errs
}
