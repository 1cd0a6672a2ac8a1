package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Slugify lowercases a name and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	// Convert string to runes to handle Unicode characters properly
	runes := []rune(s)

	if len(runes) <= maxLength {
		return s
	}

	// Handle edge cases where maxLength is too small to fit the ellipsis
	if maxLength <= 3 {
		return "..."
	}

	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString collapses whitespace and trims the result
func SanitizeString(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// MaskToken keeps the first characters of a bearer token so it can be logged
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 6 {
		return strings.Repeat("*", len(token))
	}
	return token[:6] + strings.Repeat("*", 6)
}
