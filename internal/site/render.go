package site

import "strings"

// Mode selects how many occurrences of a placeholder token a binding
// replaces.
type Mode int

const (
	// ModeFirst replaces the first occurrence only.
	ModeFirst Mode = iota
	// ModeAll replaces every occurrence. Item templates reuse the same
	// token several times, so listing renderers need this.
	ModeAll
)

// Binding pairs a literal placeholder token with its replacement.
type Binding struct {
	Token string
	Value string
}

// Substitute performs literal single-pass find-and-replace of each
// binding in order. There is deliberately no templating language
// here: no loops, no conditionals, no escaping. Bindings are an
// ordered slice so that replacement order is fixed even when a value
// happens to contain a later token.
func Substitute(tpl string, bindings []Binding, mode Mode) string {
	n := 1
	if mode == ModeAll {
		n = -1
	}
	for _, b := range bindings {
		tpl = strings.Replace(tpl, b.Token, b.Value, n)
	}
	return tpl
}

// renderLayout wraps rendered page content in the shared layout:
// fixes up the stylesheet path for the page's depth, retitles the
// document when the page has its own title, and drops the content in.
func (s *Site) renderLayout(contentHTML, title, pathFromRoot string) (string, error) {
	layout, err := s.template("layout.html")
	if err != nil {
		return "", err
	}

	layout = strings.Replace(layout, "{{css_path}}", pathFromRoot+"style.css", 1)

	if title != "" {
		plain := "<title>" + s.cfg.SiteTitle + "</title>"
		titled := "<title>" + title + " – " + s.cfg.SiteTitle + "</title>"
		layout = strings.Replace(layout, plain, titled, 1)
	}

	return strings.Replace(layout, "{{content}}", contentHTML, 1), nil
}
