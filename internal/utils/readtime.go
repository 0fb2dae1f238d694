package utils

import "strings"

// wordsPerMinute is the assumed reading speed for the estimate shown on
// article pages.
const wordsPerMinute = 200

// ReadingMinutes estimates reading time as max(1, ceil(words/200)), where
// words are whitespace-separated.
func ReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
