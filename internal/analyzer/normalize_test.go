package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("url only is passed through bare", func(t *testing.T) {
		got := Normalize("https://www.google.com", "", "")
		assert.Equal(t, "https://www.google.com", got)
	})

	t.Run("all segments in fixed order", func(t *testing.T) {
		got := Normalize("https://example.com", "Example", "hello world")
		assert.Equal(t, "URL: https://example.com Title: Example Content: hello world", got)
	})

	t.Run("title without body", func(t *testing.T) {
		got := Normalize("https://example.com", "Example", "")
		assert.Equal(t, "URL: https://example.com Title: Example", got)
	})

	t.Run("body without title", func(t *testing.T) {
		got := Normalize("https://example.com", "", "hello")
		assert.Equal(t, "URL: https://example.com Content: hello", got)
	})

	t.Run("content truncated to first 1000 characters", func(t *testing.T) {
		body := strings.Repeat("a", 1500)
		got := Normalize("https://example.com", "", body)

		_, content, ok := strings.Cut(got, "Content: ")
		assert.True(t, ok)
		assert.Equal(t, strings.Repeat("a", 1000), content)
	})

	t.Run("content at the limit is untouched", func(t *testing.T) {
		body := strings.Repeat("b", 1000)
		got := Normalize("https://example.com", "", body)
		assert.True(t, strings.HasSuffix(got, body))
	})

	t.Run("truncation counts characters not bytes", func(t *testing.T) {
		// 1200 three-byte runes; the first 1000 runes must survive intact.
		body := strings.Repeat("あ", 1200)
		got := Normalize("https://example.com", "", body)

		_, content, ok := strings.Cut(got, "Content: ")
		assert.True(t, ok)
		assert.Equal(t, strings.Repeat("あ", 1000), content)
	})
}
