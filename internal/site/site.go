// Package site implements the publish pipeline: loading Markdown
// posts with YAML front matter, rendering them through plain-text
// templates, and emitting the static site (pages, listings, Atom
// feed, JSON manifest, copied assets).
package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/mgmerino/journal/internal/config"
)

const (
	humanDateLayout = "January 02, 2006"
	isoDateLayout   = "2006-01-02"
)

// Site carries the state of one publish run: immutable configuration
// plus the shared Markdown converter.
type Site struct {
	cfg config.Config
	md  goldmark.Markdown
	now func() time.Time
}

func New(cfg config.Config) *Site {
	return &Site{
		cfg: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				// Posts may embed raw HTML.
				gmhtml.WithUnsafe(),
			),
		),
		now: time.Now,
	}
}

// renderMarkdown converts a Markdown body to HTML. Pure conversion;
// front matter has already been stripped by the loader.
func (s *Site) renderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// template reads a template file from the templates directory. A
// missing required template is fatal for the run.
func (s *Site) template(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.cfg.TemplatesDir, name))
	if err != nil {
		return "", fmt.Errorf("load template %s: %w", name, err)
	}
	return string(b), nil
}
