package site

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// CountWords counts whitespace-delimited tokens in raw Markdown after
// stripping punctuation: every character that is neither a word
// character nor whitespace becomes a space first.
func CountWords(text string) int {
	return len(strings.Fields(nonWord.ReplaceAllString(text, " ")))
}
