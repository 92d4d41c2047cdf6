package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeQuery lower-cases a free-text query and collapses whitespace so
// equivalent spellings share a cache entry
func NormalizeQuery(s string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " "))
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}
