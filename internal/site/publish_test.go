package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixtureSite(t *testing.T, root string) {
	t.Helper()
	writeTestTemplates(t, root)

	writePost(t, root, "2024-01-01-january.md", `---
status: published
title: "January Notes"
date: 2024-01-01
tags: [winter]
slug: january
---
First of the year.
`)
	writePost(t, root, "2024-03-01-march.md", `---
status: published
title: "March Notes"
date: 2024-03-01
tags: [spring, garden]
slug: march
---
Things are growing.
`)
	writePost(t, root, "2024-02-01-february.md", `---
status: published
title: "February Notes"
date: 2024-02-01
slug: february
---
Still cold.
`)
	writePost(t, root, "2024-02-10-draft.md", `---
status: draft
title: "Unfinished"
date: 2024-02-10
slug: unfinished
---
Not ready.
`)

	writeTestFile(t, filepath.Join(root, "content", "about.md"),
		"---\ntitle: About\n---\nThis is my journal.\n")
	writeTestFile(t, filepath.Join(root, "content", "img", "photo.png"), "not-really-a-png")
	writeTestFile(t, filepath.Join(root, "assets", "fonts", "mono.woff2"), "not-really-a-font")
}

func TestPublish_EmitsTheFullSite(t *testing.T) {
	s, root := newTestSite(t)
	writeFixtureSite(t, root)

	require.NoError(t, s.Publish())

	out := s.cfg.OutputDir
	for _, p := range []string{
		"index.html",
		filepath.Join("recent", "index.html"),
		filepath.Join("posts", "january", "index.html"),
		filepath.Join("posts", "february", "index.html"),
		filepath.Join("posts", "march", "index.html"),
		filepath.Join("about", "index.html"),
		filepath.Join("all", "index.html"),
		"posts.json",
		"feed.xml",
		"style.css",
		filepath.Join("img", "photo.png"),
		filepath.Join("fonts", "mono.woff2"),
	} {
		require.FileExists(t, filepath.Join(out, p), p)
	}

	_, err := os.Stat(filepath.Join(out, "posts", "unfinished"))
	require.True(t, os.IsNotExist(err), "draft posts produce no output")
}

func TestPublish_ManifestOrderedByDateDescending(t *testing.T) {
	s, root := newTestSite(t)
	writeFixtureSite(t, root)

	require.NoError(t, s.Publish())

	manifest := readOutput(t, s, "posts.json")
	require.JSONEq(t, `[
		{"title":"March Notes","url":"/posts/march/"},
		{"title":"February Notes","url":"/posts/february/"},
		{"title":"January Notes","url":"/posts/january/"}
	]`, manifest)
}

func TestPublish_TagColorsComeFromThePalette(t *testing.T) {
	s, root := newTestSite(t)
	writeFixtureSite(t, root)

	require.NoError(t, s.Publish())

	// Sorted tags: garden, spring, winter → palette[0..2].
	all := readOutput(t, s, "all", "index.html")
	require.Contains(t, all, "background-color: "+s.cfg.Palette[0]+`">garden</span>`)
	require.Contains(t, all, "background-color: "+s.cfg.Palette[1]+`">spring</span>`)
	require.Contains(t, all, "background-color: "+s.cfg.Palette[2]+`">winter</span>`)
}

func TestPublish_FailsOnUnparseableFrontMatter(t *testing.T) {
	s, root := newTestSite(t)
	writeFixtureSite(t, root)
	writePost(t, root, "zz-broken.md", "---\ntitle: [broken\n---\nBody.\n")

	err := s.Publish()
	require.Error(t, err)
	require.Contains(t, err.Error(), "zz-broken.md")
}

func TestPublish_MissingAssetsAreSkippedSilently(t *testing.T) {
	s, root := newTestSite(t)
	writeTestTemplates(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, "templates", "style.css")))

	require.NoError(t, s.Publish())

	_, err := os.Stat(filepath.Join(s.cfg.OutputDir, "style.css"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(s.cfg.OutputDir, "fonts"))
	require.True(t, os.IsNotExist(err))
}

func TestPublish_LeavesStaleOutputBehind(t *testing.T) {
	s, root := newTestSite(t)
	writeFixtureSite(t, root)
	require.NoError(t, s.Publish())

	// Remove a post and republish: its old output stays.
	require.NoError(t, os.Remove(filepath.Join(root, "content", "posts", "2024-01-01-january.md")))
	require.NoError(t, s.Publish())

	require.FileExists(t, filepath.Join(s.cfg.OutputDir, "posts", "january", "index.html"))

	manifest := readOutput(t, s, "posts.json")
	require.NotContains(t, manifest, "january", "the collection itself no longer lists the removed post")
}

func TestPublish_IsIdempotentForUnchangedInput(t *testing.T) {
	s, root := newTestSite(t)
	writeFixtureSite(t, root)

	require.NoError(t, s.Publish())
	first := readOutput(t, s, "all", "index.html")
	firstFeed := readOutput(t, s, "feed.xml")

	require.NoError(t, s.Publish())
	require.Equal(t, first, readOutput(t, s, "all", "index.html"))
	require.Equal(t, firstFeed, readOutput(t, s, "feed.xml"))
}
