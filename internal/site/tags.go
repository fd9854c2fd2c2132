package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mgmerino/journal/internal/model"
)

// fallbackTagColor is used for any tag missing from the color map.
const fallbackTagColor = "#666"

// CollectTags returns the distinct tags across posts in lexicographic
// order.
func CollectTags(posts []*model.Post) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// AssignColors maps each tag to a palette entry by its position in
// the sorted tag list, wrapping around when there are more tags than
// colors.
func AssignColors(tags []string, palette []string) map[string]string {
	colors := make(map[string]string, len(tags))
	if len(palette) == 0 {
		return colors
	}
	for i, tag := range tags {
		colors[tag] = palette[i%len(palette)]
	}
	return colors
}

// renderTagBadges builds the inline badge fragment for a post's tags.
// An empty tag list renders as the empty string.
func renderTagBadges(tags []string, colors map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	badges := make([]string, 0, len(tags))
	for _, t := range tags {
		color, ok := colors[t]
		if !ok {
			color = fallbackTagColor
		}
		badges = append(badges, fmt.Sprintf(`<span class="tag" style="background-color: %s">%s</span>`, color, t))
	}
	return `<span class="tags">` + strings.Join(badges, " ") + `</span>`
}
