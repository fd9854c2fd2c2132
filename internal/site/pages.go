package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mgmerino/journal/internal/model"
)

// recentPostLimit is how many posts the home/recent listing shows.
const recentPostLimit = 10

// buildPostPages writes posts/<slug>/index.html for every post. A
// slug shared by two posts silently overwrites: last one wins.
func (s *Site) buildPostPages(posts []*model.Post, colors map[string]string) error {
	tpl, err := s.template("entry.html")
	if err != nil {
		return err
	}

	for _, p := range posts {
		outDir := filepath.Join(s.cfg.OutputDir, "posts", p.Slug)
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return fmt.Errorf("create post directory %s: %w", outDir, err)
		}

		article := Substitute(tpl, []Binding{
			{"{{title}}", p.Title},
			{"{{body}}", p.BodyHTML},
			{"{{date}}", p.Date.Format(humanDateLayout)},
			{"{{date_ago}}", TimeAgo(p.Date, s.now())},
			{"{{tags}}", renderTagBadges(p.Tags, colors)},
		}, ModeFirst)

		full, err := s.renderLayout(article, p.Title, "../../")
		if err != nil {
			return err
		}
		if err := s.writePage(filepath.Join(outDir, "index.html"), full); err != nil {
			return err
		}
	}
	return nil
}

// buildAboutPage renders content/about.md into about/index.html.
// No about file means no about page; that is not an error.
func (s *Site) buildAboutPage() error {
	aboutPath := filepath.Join(s.cfg.ContentDir, "about.md")
	if _, err := os.Stat(aboutPath); os.IsNotExist(err) {
		slog.Debug("no about page source, skipping", "path", aboutPath)
		return nil
	}

	meta, body, err := readContent(aboutPath)
	if err != nil {
		return err
	}
	bodyHTML, err := s.renderMarkdown(body)
	if err != nil {
		return fmt.Errorf("render markdown for %s: %w", aboutPath, err)
	}
	title := meta.String("title", "About")

	contentHTML := "<section id=\"about\">\n" +
		"  <h2>" + title + "</h2>\n" +
		"  " + bodyHTML + "\n" +
		"</section>\n"

	full, err := s.renderLayout(contentHTML, title, "../")
	if err != nil {
		return err
	}

	outDir := filepath.Join(s.cfg.OutputDir, "about")
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("create about directory %s: %w", outDir, err)
	}
	return s.writePage(filepath.Join(outDir, "index.html"), full)
}

// buildAllPage renders the full listing at all/index.html: one row
// per post plus a tag dropdown for client-side filtering. The item
// template repeats tokens, so rows substitute in ModeAll.
func (s *Site) buildAllPage(posts []*model.Post, tags []string, colors map[string]string) error {
	allTpl, err := s.template("all.html")
	if err != nil {
		return err
	}
	itemTpl, err := s.template("all-item.html")
	if err != nil {
		return err
	}

	options := make([]string, 0, len(tags))
	for _, tag := range tags {
		options = append(options, fmt.Sprintf("<option value=%q>%s</option>", tag, tag))
	}

	items := make([]string, 0, len(posts))
	for _, p := range posts {
		items = append(items, Substitute(itemTpl, []Binding{
			{"{{slug}}", p.Slug},
			{"{{title}}", p.Title},
			{"{{date}}", p.Date.Format(isoDateLayout)},
			{"{{word_count}}", strconv.Itoa(p.WordCount)},
			{"{{tags}}", renderTagBadges(p.Tags, colors)},
			{"{{tags_plain}}", strings.Join(p.Tags, ", ")},
		}, ModeAll))
	}

	contentHTML := Substitute(allTpl, []Binding{
		{"{{items}}", strings.Join(items, "\n")},
		{"{{tag_options}}", strings.Join(options, "\n        ")},
	}, ModeFirst)

	full, err := s.renderLayout(contentHTML, "All posts", "../")
	if err != nil {
		return err
	}

	outDir := filepath.Join(s.cfg.OutputDir, "all")
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("create all directory %s: %w", outDir, err)
	}
	return s.writePage(filepath.Join(outDir, "index.html"), full)
}

// buildRecentPages renders the newest posts through the compact
// template and writes the same content twice: the site root and
// /recent/, each with its own asset-path prefix.
func (s *Site) buildRecentPages(posts []*model.Post, colors map[string]string) error {
	recentTpl, err := s.template("recent.html")
	if err != nil {
		return err
	}
	entryTpl, err := s.template("recent-entry.html")
	if err != nil {
		return err
	}

	recent := posts
	if len(recent) > recentPostLimit {
		recent = recent[:recentPostLimit]
	}

	entries := make([]string, 0, len(recent))
	for _, p := range recent {
		entries = append(entries, Substitute(entryTpl, []Binding{
			{"{{slug}}", p.Slug},
			{"{{title}}", p.Title},
			{"{{body}}", p.BodyHTML},
			{"{{date}}", p.Date.Format(humanDateLayout)},
			{"{{tags}}", renderTagBadges(p.Tags, colors)},
		}, ModeFirst))
	}

	contentHTML := Substitute(recentTpl, []Binding{
		{"{{entries}}", strings.Join(entries, "\n")},
	}, ModeFirst)

	home, err := s.renderLayout(contentHTML, "Home", "")
	if err != nil {
		return err
	}
	if err := s.writePage(filepath.Join(s.cfg.OutputDir, "index.html"), home); err != nil {
		return err
	}

	recentDir := filepath.Join(s.cfg.OutputDir, "recent")
	if err := os.MkdirAll(recentDir, os.ModePerm); err != nil {
		return fmt.Errorf("create recent directory %s: %w", recentDir, err)
	}
	recentPage, err := s.renderLayout(contentHTML, "Recent", "../")
	if err != nil {
		return err
	}
	return s.writePage(filepath.Join(recentDir, "index.html"), recentPage)
}

func (s *Site) writePage(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("generated page", "path", path)
	return nil
}
