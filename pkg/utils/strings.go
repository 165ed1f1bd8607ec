package utils

import (
	"strings"
	"unicode/utf8"
)

// ContainsString reports whether list contains s.
func ContainsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CleanToValidUTF8 strips invalid UTF-8 sequences from scraped text.
func CleanToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}

// SafeText collapses runs of whitespace and trims the result.
func SafeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
