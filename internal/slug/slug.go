// Package slug derives URL-safe identifiers from human-readable text.
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// commentBaseLen caps a comment slug base at 50 characters of slugified content.
const commentBaseLen = 50

// commentFallback is used when slugified comment content comes out empty.
const commentFallback = "comment"

// Make lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen. Leading and trailing separators are dropped.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// CommentBase returns the slug base for a comment: the first 50 characters
// of the slugified content, or "comment" when the content slugifies to
// nothing. The cut is positional and may land mid-word.
func CommentBase(content string) string {
	base := Make(content)
	if base == "" {
		return commentFallback
	}
	if runes := []rune(base); len(runes) > commentBaseLen {
		base = string(runes[:commentBaseLen])
	}
	return base
}

// MakeUnique resolves base against already-persisted slugs by appending -1,
// -2, ... until exists reports a free candidate. The predicate is the only
// side effect here; the check-then-insert window is not atomic, the store's
// unique index is the authoritative guard.
func MakeUnique(base string, exists func(string) (bool, error)) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
