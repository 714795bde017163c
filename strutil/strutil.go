package strutil

import (
	"strings"
	"unicode/utf8"
)

// DefaultIfEmpty returns def when s is empty.
func DefaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// IsBlank reports whether s is empty or consists entirely of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitNonBlank splits s on sep, trims every segment and drops the blank ones.
// A blank input yields a nil slice.
func SplitNonBlank(s string, sep rune) []string {
	if IsBlank(s) {
		return nil
	}

	var segments []string
	for _, seg := range strings.Split(s, string(sep)) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Truncate shortens s to at most max runes, appending an ellipsis
// when something was cut off. max counts the ellipsis itself.
func Truncate(s string, max int) string {
	const ellipsis = "…"

	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max-1]) + ellipsis
}

// ContainsFold reports whether list contains s under unicode case folding.
func ContainsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// CollapseSpaces trims s and replaces every run of whitespace
// with a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
