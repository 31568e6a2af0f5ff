package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizePasses bounds the unescape/strip loop for nested encodings
// such as "&amp;lt;b&amp;gt;".
const maxSanitizePasses = 4

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes every HTML tag from a user supplied string and returns
// plain text. A string without markup, literal or entity encoded at any
// depth, is returned unchanged, so "a&amp;b.txt" keeps its entity. When
// markup is present, entities are decoded while tags are stripped: tags
// smuggled in as entities go too, and a literal entity next to them is
// decoded as well ("<b>a&amp;b</b>" becomes "a&b").
func StripTags(s string) string {
	if !containsMarkup(s) {
		return s
	}

	out := s
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(out))
		if next == out {
			return next
		}
		out = next
	}
	// still changing: keep the escaped form, it cannot contain a tag
	return strictPolicy.Sanitize(out)
}

// containsMarkup reports whether s holds a '<', directly or behind up to
// maxSanitizePasses levels of entity encoding. Deeper encodings count as
// markup.
func containsMarkup(s string) bool {
	for i := 0; i < maxSanitizePasses; i++ {
		if strings.ContainsRune(s, '<') {
			return true
		}
		next := html.UnescapeString(s)
		if next == s {
			return false
		}
		s = next
	}
	return true
}
