// Package tags derives #tag views from reminder text fields. Tags are
// never stored separately: the canonical location is the title, with
// notes scanned for backward compatibility.
package tags

import (
	"strings"
	"unicode"
)

// Extract splits text on whitespace and pulls out the qualifying #tag
// tokens. A token qualifies when it starts with '#' and is longer than
// one character after trailing punctuation (other than '#') is trimmed.
// Tags are case-preserved and deduplicated, first occurrence wins.
// Only the first physical occurrence of a duplicate is removed from the
// text; later occurrences stay put.
func Extract(text string) (string, []string) {
	var (
		kept []string
		tags []string
		seen = map[string]bool{}
	)

	for _, token := range strings.Fields(text) {
		tag, ok := tagText(token)
		if ok && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " "), tags
}

// tagText returns the tag body of a token, or false if the token is not
// a tag. Trailing punctuation is trimmed, but embedded '#' is kept.
func tagText(token string) (string, bool) {
	if !strings.HasPrefix(token, "#") {
		return "", false
	}
	body := strings.TrimRightFunc(token[1:], func(r rune) bool {
		return r != '#' && unicode.IsPunct(r)
	})
	if body == "" {
		return "", false
	}
	return body, true
}

// Append re-attaches tags to clean text in canonical space-separated
// #tag form. Extracting and re-appending an already-canonical title
// reproduces it unchanged.
func Append(text string, tagList []string) string {
	parts := make([]string, 0, len(tagList)+1)
	if text != "" {
		parts = append(parts, text)
	}
	for _, tag := range tagList {
		parts = append(parts, "#"+tag)
	}
	return strings.Join(parts, " ")
}

// Canonicalize rewrites a title so its tags sit in canonical form after
// the clean text.
func Canonicalize(title string) string {
	clean, tagList := Extract(title)
	return Append(clean, tagList)
}

// Canonical prefixes a '#' unless the caller already supplied one.
func Canonical(tag string) string {
	if strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}

// Contains reports whether the canonical #tag token appears as a
// literal substring of the text.
func Contains(text, tag string) bool {
	return strings.Contains(text, Canonical(tag))
}

// Strip returns the text with all qualifying tag tokens removed.
// Used when matching a lookup query against a tagged title.
func Strip(text string) string {
	var kept []string
	for _, token := range strings.Fields(text) {
		if _, ok := tagText(token); ok {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// FromRecord unions the tags of a title and notes pair, title first,
// preserving first-occurrence order across both fields.
func FromRecord(title, notes string) []string {
	_, titleTags := Extract(title)
	_, noteTags := Extract(notes)

	seen := map[string]bool{}
	var union []string
	for _, tag := range append(titleTags, noteTags...) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		union = append(union, tag)
	}
	return union
}
