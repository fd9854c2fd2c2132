package model

import (
	"sort"
	"time"
)

// Post is one published journal entry. Built once per Markdown file
// during a publish run and never mutated afterwards.
type Post struct {
	Title     string
	Date      time.Time
	Updated   time.Time // zero unless front matter carries an explicit update date
	Tags      []string
	Slug      string
	BodyHTML  string
	WordCount int
}

// SortByDateDesc orders posts newest first. The sort is stable and
// uses no secondary key: posts sharing a date keep the order they
// were loaded in.
func SortByDateDesc(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}
