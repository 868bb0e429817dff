package inspect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label converts a predicate or resource IRI into a human-readable label:
// the local name after the last '#' or '/' (trailing separators ignored),
// split into words at internal uppercase boundaries, each word capitalized.
//
//	Label("https://example.com/FooBarBaz") == "Foo Bar Baz"
//	Label("https://example.com")           == "Example.com"
func Label(identifier string) string {
	trimmed := strings.TrimRight(identifier, "#/")
	local := trimmed
	if i := strings.LastIndexAny(trimmed, "#/"); i >= 0 {
		local = trimmed[i+1:]
	}

	var words []string
	var cur []rune
	for _, r := range local {
		if unicode.IsUpper(r) && len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}

	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
