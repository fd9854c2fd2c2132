package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgmerino/journal/internal/model"
)

type manifestEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// buildManifest writes posts.json: a pretty-printed array of
// {title, url} objects, one per post, in collection order.
func (s *Site) buildManifest(posts []*model.Post) error {
	entries := make([]manifestEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, manifestEntry{
			Title: p.Title,
			URL:   "/posts/" + p.Slug + "/",
		})
	}

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal posts manifest: %w", err)
	}

	path := filepath.Join(s.cfg.OutputDir, "posts.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
