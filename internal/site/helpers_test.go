package site

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgmerino/journal/internal/config"
)

// testToday is the fixed "now" used by tests that touch time-derived
// output.
var testToday = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestSite(t *testing.T) (*Site, string) {
	t.Helper()
	root := t.TempDir()

	cfg := config.Config{
		ContentDir:   filepath.Join(root, "content"),
		TemplatesDir: filepath.Join(root, "templates"),
		FontsDir:     filepath.Join(root, "assets", "fonts"),
		OutputDir:    filepath.Join(root, "public"),
		SiteTitle:    "Journal",
		SiteURL:      "https://journal.example.com",
		Author:       "Test Author",
		Palette:      config.DefaultPalette,
	}

	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0o755))

	s := New(cfg)
	s.now = func() time.Time { return testToday }
	return s, root
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writePost(t *testing.T, root, name, content string) {
	t.Helper()
	writeTestFile(t, filepath.Join(root, "content", "posts", name), content)
}

// writeTestTemplates lays down the full template set the renderers
// need.
func writeTestTemplates(t *testing.T, root string) {
	t.Helper()
	dir := filepath.Join(root, "templates")

	writeTestFile(t, filepath.Join(dir, "layout.html"),
		"<html><head><title>Journal</title>"+
			`<link rel="stylesheet" href="{{css_path}}"></head>`+
			"<body>{{content}}</body></html>\n")
	writeTestFile(t, filepath.Join(dir, "entry.html"),
		"<article><h1>{{title}}</h1><p class=\"meta\">{{date}} ({{date_ago}}) {{tags}}</p>{{body}}</article>\n")
	writeTestFile(t, filepath.Join(dir, "all.html"),
		"<select>\n        {{tag_options}}\n</select>\n<ul>\n{{items}}\n</ul>\n")
	writeTestFile(t, filepath.Join(dir, "all-item.html"),
		`<li data-tags="{{tags_plain}}"><a href="../posts/{{slug}}/">{{title}}</a> {{date}} {{word_count}} words {{tags}}</li>`)
	writeTestFile(t, filepath.Join(dir, "recent.html"),
		"<main>\n{{entries}}\n</main>\n")
	writeTestFile(t, filepath.Join(dir, "recent-entry.html"),
		`<section><h2><a href="posts/{{slug}}/">{{title}}</a></h2><p>{{date}} {{tags}}</p>{{body}}</section>`)
	writeTestFile(t, filepath.Join(dir, "style.css"), "body { margin: 0; }\n")
}

func readOutput(t *testing.T, s *Site, parts ...string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(append([]string{s.cfg.OutputDir}, parts...)...))
	require.NoError(t, err)
	return string(b)
}
