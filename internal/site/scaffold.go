package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe slug from a post title: lowercase, drop
// anything that is not a word character, whitespace, or hyphen,
// collapse whitespace and underscores to single hyphens, and trim
// hyphens from the ends.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}

type scaffoldFrontMatter struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
	Slug  string   `yaml:"slug"`
}

// Scaffold creates a new post stub named <date>-<slug>.md under
// postsDir. It refuses to touch an existing file.
func Scaffold(postsDir, title string, date time.Time) (string, error) {
	slug := Slugify(title)
	filename := date.Format(isoDateLayout) + "-" + slug + ".md"
	path := filepath.Join(postsDir, filename)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("post already exists at %s", path)
	}

	fm, err := yaml.Marshal(scaffoldFrontMatter{
		Title: title,
		Date:  date.Format(isoDateLayout),
		Tags:  []string{},
		Slug:  slug,
	})
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\nWrite your content here...\n")

	if err := os.MkdirAll(postsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create posts directory %s: %w", postsDir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
