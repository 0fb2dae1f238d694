package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingMinutes(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty content floors at one minute", "", 1},
		{"single word", "hello", 1},
		{"exactly 200 words", words(200), 1},
		{"201 words rounds up", words(201), 2},
		{"400 words", words(400), 2},
		{"401 words", words(401), 3},
		{"whitespace only", "   \n\t  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadingMinutes(tt.content))
		})
	}
}
