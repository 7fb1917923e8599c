// Package parser turns raw resume text into a structured profile: detected
// skills, sections, and an inferred experience level for one target role.
package parser

import (
	"strings"
	"unicode"
)

// allowedPunct survives normalization because it appears inside skill tokens
// (C++, C#, Node.js, CI/CD).
const allowedPunct = "/#+-."

// Normalize lowercases text and strips layout noise for matching: every rune
// that is not a word character, whitespace, or allowed punctuation becomes a
// space, then whitespace runs collapse to a single space.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case isWordRune(r), unicode.IsSpace(r), strings.ContainsRune(allowedPunct, r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
