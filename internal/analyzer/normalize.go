package analyzer

import "strings"

// maxContentChars bounds the content segment before the runtime's own
// 512-token truncation; both limits apply, in that order.
const maxContentChars = 1000

// Normalize combines a request's URL, optional title, and optional body
// into the single string the model scores. Segments appear in fixed
// order [URL, Title, Content], joined by a single space. A request
// carrying only a URL normalizes to the bare URL.
func Normalize(url, title, text string) string {
	if title == "" && text == "" {
		return url
	}

	parts := make([]string, 0, 3)
	parts = append(parts, "URL: "+url)
	if title != "" {
		parts = append(parts, "Title: "+title)
	}
	if text != "" {
		parts = append(parts, "Content: "+truncateRunes(text, maxContentChars))
	}
	return strings.Join(parts, " ")
}

// truncateRunes cuts s to at most n characters. Character count, not
// bytes, so multi-byte input is never split mid-rune.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
