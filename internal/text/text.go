package text

import (
	"strings"
)

// Tokens splits a trimmed line into raw tokens on single spaces.
// Consecutive spaces produce empty tokens, which are kept.
func Tokens(line string) []string {
	return strings.Split(line, " ")
}

// Normalize lowercases a raw token and drops every rune outside a-z.
func Normalize(token string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(token) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ContainsFold reports whether word occurs in s, ignoring case.
func ContainsFold(s, word string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(word))
}
