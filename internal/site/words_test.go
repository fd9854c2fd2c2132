package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountWords_StripsPunctuationFirst(t *testing.T) {
	require.Equal(t, 4, CountWords("Hello, world! 2 words?"))
}

func TestCountWords_EmptyAndWhitespaceOnly(t *testing.T) {
	require.Equal(t, 0, CountWords(""))
	require.Equal(t, 0, CountWords("   \n\t  "))
	require.Equal(t, 0, CountWords("!!! ... ???"))
}

func TestCountWords_MarkdownSyntaxCountsAsSpacing(t *testing.T) {
	// "*emphasis*" and "[link](url)" collapse to their word parts.
	require.Equal(t, 2, CountWords("*hello* **there**"))
	require.Equal(t, 4, CountWords("[a link](url) here"))
}
