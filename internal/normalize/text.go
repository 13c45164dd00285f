package normalize

import (
	"regexp"
	"strings"
)

var (
	nonWordRegex    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Name returns the canonical key used for fuzzy containment checks:
// lower-cased, stripped of anything but word characters and whitespace,
// with whitespace runs collapsed and trimmed.
func Name(s string) string {
	s = strings.ToLower(s)
	s = nonWordRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Names applies Name to every entry of list
func Names(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = Name(s)
	}
	return out
}
