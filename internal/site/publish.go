package site

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mgmerino/journal/internal/config"
	"github.com/mgmerino/journal/internal/model"
)

// Publish runs the whole pipeline once: load posts, sort, derive tag
// colors, render every page, copy assets. Failures abort immediately
// with no rollback; a partially written output tree is recovered by
// re-running. Existing output is never cleaned, so posts removed from
// the content directory leave stale pages behind.
func Publish(cfg config.Config) error {
	return New(cfg).Publish()
}

func (s *Site) Publish() error {
	if err := os.MkdirAll(s.cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("create output directory %s: %w", s.cfg.OutputDir, err)
	}

	posts, err := s.LoadPosts()
	if err != nil {
		return err
	}
	model.SortByDateDesc(posts)

	tags := CollectTags(posts)
	colors := AssignColors(tags, s.cfg.Palette)

	if err := s.buildPostPages(posts, colors); err != nil {
		return err
	}
	if err := s.buildAboutPage(); err != nil {
		return err
	}
	if err := s.buildAllPage(posts, tags, colors); err != nil {
		return err
	}
	if err := s.buildRecentPages(posts, colors); err != nil {
		return err
	}
	if err := s.buildManifest(posts); err != nil {
		return err
	}
	if err := s.buildFeed(posts); err != nil {
		return err
	}

	if err := s.copyCSS(); err != nil {
		return err
	}
	if err := s.copyFonts(); err != nil {
		return err
	}
	if err := s.copyImages(); err != nil {
		return err
	}

	slog.Info("site generated", "posts", len(posts), "tags", len(tags))
	return nil
}
