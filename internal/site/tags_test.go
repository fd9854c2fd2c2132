package site

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgmerino/journal/internal/model"
)

func TestCollectTags_SortedDistinct(t *testing.T) {
	posts := []*model.Post{
		{Tags: []string{"unix", "go"}},
		{Tags: []string{"go", "notes"}},
		{Tags: nil},
	}

	require.Equal(t, []string{"go", "notes", "unix"}, CollectTags(posts))
}

func TestCollectTags_NoPostsNoTags(t *testing.T) {
	require.Empty(t, CollectTags(nil))
}

func TestAssignColors_BySortedPosition(t *testing.T) {
	palette := []string{"#111", "#222", "#333"}

	colors := AssignColors([]string{"a", "b", "c"}, palette)

	require.Equal(t, "#111", colors["a"])
	require.Equal(t, "#222", colors["b"])
	require.Equal(t, "#333", colors["c"])
}

func TestAssignColors_WrapsAroundPalette(t *testing.T) {
	palette := make([]string, 10)
	for i := range palette {
		palette[i] = fmt.Sprintf("#%06x", i)
	}
	tags := make([]string, 11)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag-%02d", i)
	}

	colors := AssignColors(tags, palette)

	require.Equal(t, palette[0], colors["tag-00"])
	require.Equal(t, palette[9], colors["tag-09"])
	require.Equal(t, palette[0], colors["tag-10"], "the 11th tag wraps to the first color")
}

func TestRenderTagBadges_EmptyTagsRenderNothing(t *testing.T) {
	require.Empty(t, renderTagBadges(nil, map[string]string{}))
}

func TestRenderTagBadges_UsesAssignedColors(t *testing.T) {
	got := renderTagBadges([]string{"go", "unix"}, map[string]string{"go": "#ea00ff", "unix": "#ff0808"})

	require.Equal(t,
		`<span class="tags">`+
			`<span class="tag" style="background-color: #ea00ff">go</span> `+
			`<span class="tag" style="background-color: #ff0808">unix</span>`+
			`</span>`,
		got)
}

func TestRenderTagBadges_UnknownTagFallsBack(t *testing.T) {
	got := renderTagBadges([]string{"mystery"}, map[string]string{})

	require.Contains(t, got, "background-color: #666")
}
