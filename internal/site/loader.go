package site

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/mgmerino/journal/internal/model"
)

// LoadPosts reads every *.md file directly under content/posts
// (non-recursive) and builds a Post per published file. The result is
// unsorted; the orchestrator applies the date ordering. Any file with
// unparseable front matter or a missing/invalid date fails the whole
// run; there is no per-file isolation.
func (s *Site) LoadPosts() ([]*model.Post, error) {
	pattern := filepath.Join(s.cfg.ContentDir, "posts", "*.md")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	var posts []*model.Post
	for _, path := range paths {
		meta, body, err := readContent(path)
		if err != nil {
			return nil, err
		}

		// Only published posts make it into the collection; drafts and
		// anything with an unknown status are dropped before a record
		// is built.
		if status := meta.String("status", "draft"); status != "published" {
			slog.Debug("skipping unpublished post", "path", path, "status", status)
			continue
		}

		date, err := meta.Date("date")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		updated, _, err := meta.OptionalDate("updated")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		slug := meta.String("slug", stem)
		title := meta.String("title", slug)

		bodyHTML, err := s.renderMarkdown(body)
		if err != nil {
			return nil, fmt.Errorf("render markdown for %s: %w", path, err)
		}

		posts = append(posts, &model.Post{
			Title:     title,
			Date:      date,
			Updated:   updated,
			Tags:      meta.StringList("tags"),
			Slug:      slug,
			BodyHTML:  bodyHTML,
			WordCount: CountWords(string(body)),
		})
	}
	return posts, nil
}

// readContent splits a content file into front matter and body. A
// file that does not start with a `---` delimiter line has empty
// metadata and the full text as body.
func readContent(path string) (model.Meta, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var meta model.Meta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return nil, nil, &model.MetadataParseError{Path: path, Err: err}
	}
	if meta == nil {
		meta = model.Meta{}
	}
	return meta, body, nil
}
