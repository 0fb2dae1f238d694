package slug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapses", "Hello, World!", "hello-world"},
		{"same normalized form as punctuated variant", "Hello World!", "hello-world"},
		{"mixed case", "GoLang Tips", "golang-tips"},
		{"leading and trailing junk", "  --Breaking News-- ", "breaking-news"},
		{"digits kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"run of separators", "a   ...   b", "a-b"},
		{"empty", "", ""},
		{"only symbols", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestCommentBase(t *testing.T) {
	t.Run("short content unchanged", func(t *testing.T) {
		assert.Equal(t, "nice-article", CommentBase("Nice article!"))
	})

	t.Run("cut at fifty characters mid word", func(t *testing.T) {
		// Slugified input is 52 chars; the cut keeps exactly the first 50,
		// even when that splits a word.
		got := CommentBase("Great post, really enjoyed it and learned a lot today")
		assert.Equal(t, "great-post-really-enjoyed-it-and-learned-a-lot-tod", got)
		assert.Len(t, got, 50)
	})

	t.Run("empty content falls back", func(t *testing.T) {
		assert.Equal(t, "comment", CommentBase(""))
		assert.Equal(t, "comment", CommentBase("???"))
	})
}

func TestMakeUnique(t *testing.T) {
	t.Run("no collision keeps base", func(t *testing.T) {
		got, err := MakeUnique("hello-world", func(string) (bool, error) { return false, nil })
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("first collision appends dash one", func(t *testing.T) {
		taken := map[string]bool{"great-post": true}
		got, err := MakeUnique("great-post", func(s string) (bool, error) { return taken[s], nil })
		assert.NoError(t, err)
		assert.Equal(t, "great-post-1", got)
	})

	t.Run("counter keeps climbing past taken suffixes", func(t *testing.T) {
		taken := map[string]bool{"great-post": true, "great-post-1": true, "great-post-2": true}
		got, err := MakeUnique("great-post", func(s string) (bool, error) { return taken[s], nil })
		assert.NoError(t, err)
		assert.Equal(t, "great-post-3", got)
	})

	t.Run("predicate error propagates", func(t *testing.T) {
		wantErr := errors.New("db down")
		_, err := MakeUnique("x", func(string) (bool, error) { return false, wantErr })
		assert.ErrorIs(t, err, wantErr)
	})
}
