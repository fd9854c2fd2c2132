package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mgmerino/journal/internal/model"
)

// feedPostLimit caps how many entries the Atom feed carries.
const feedPostLimit = 20

// summaryLength is the rune cap for entry summaries. The ellipsis
// check runs after slicing, so a summary of exactly this length gets
// an ellipsis too.
const summaryLength = 200

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var (
	htmlTagRun    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// feedSummary derives a plain-text summary from rendered body HTML:
// tags stripped to spaces, whitespace collapsed, trimmed, truncated
// to summaryLength runes with a trailing ellipsis when it hits the
// cap.
func feedSummary(bodyHTML string) string {
	text := htmlTagRun.ReplaceAllString(bodyHTML, " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > summaryLength {
		runes = runes[:summaryLength]
	}
	summary := string(runes)
	if len(runes) >= summaryLength {
		summary += "..."
	}
	return summary
}

// buildFeed writes feed.xml, an Atom 1.0 feed of the most recent
// posts. All user text is XML-escaped; timestamps are date-only ISO
// strings, and an entry's updated falls back to its published date.
func (s *Site) buildFeed(posts []*model.Post) error {
	updated := s.now().Format(isoDateLayout)
	if len(posts) > 0 {
		updated = posts[0].Date.Format(isoDateLayout)
	}

	feedPosts := posts
	if len(feedPosts) > feedPostLimit {
		feedPosts = feedPosts[:feedPostLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<feed xmlns=\"http://www.w3.org/2005/Atom\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", escapeXML(s.cfg.SiteTitle))
	fmt.Fprintf(&b, "  <link href=\"%s/feed.xml\" rel=\"self\" />\n", s.cfg.SiteURL)
	fmt.Fprintf(&b, "  <link href=\"%s/\" />\n", s.cfg.SiteURL)
	fmt.Fprintf(&b, "  <updated>%s</updated>\n", updated)
	fmt.Fprintf(&b, "  <id>%s/</id>\n", s.cfg.SiteURL)
	fmt.Fprintf(&b, "  <author>\n    <name>%s</name>\n  </author>\n", escapeXML(s.cfg.Author))

	for _, p := range feedPosts {
		postURL := fmt.Sprintf("%s/posts/%s/", s.cfg.SiteURL, p.Slug)
		published := p.Date.Format(isoDateLayout)
		entryUpdated := published
		if !p.Updated.IsZero() {
			entryUpdated = p.Updated.Format(isoDateLayout)
		}

		fmt.Fprintf(&b, "\n<entry>\n")
		fmt.Fprintf(&b, "  <title>%s</title>\n", escapeXML(p.Title))
		fmt.Fprintf(&b, "  <link href=%q />\n", postURL)
		fmt.Fprintf(&b, "  <id>%s</id>\n", postURL)
		fmt.Fprintf(&b, "  <published>%s</published>\n", published)
		fmt.Fprintf(&b, "  <updated>%s</updated>\n", entryUpdated)
		fmt.Fprintf(&b, "  <summary>%s</summary>\n", escapeXML(feedSummary(p.BodyHTML)))
		fmt.Fprintf(&b, "  <content type=\"html\">%s</content>\n", escapeXML(p.BodyHTML))
		fmt.Fprintf(&b, "</entry>\n")
	}

	b.WriteString("\n</feed>\n")

	path := filepath.Join(s.cfg.OutputDir, "feed.xml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("generated Atom feed", "entries", len(feedPosts))
	return nil
}
