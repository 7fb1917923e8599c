package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"skillgap-backend/internal/shared/telemetry"
	"skillgap-backend/internal/skills"
)

// closingPunct may directly follow a pattern that ends in a non-word rune,
// e.g. "c++," or "node.js)".
const closingPunct = ",;.)]"

// pattern is one compiled search term for a canonical skill: either the
// skill's own lowercase form or one of its aliases. A nil re means
// compilation failed and matching falls back to a plain substring count.
type pattern struct {
	raw string
	re  *regexp.Regexp
}

// Matcher holds the precompiled pattern set per canonical skill. Built once
// per dictionary, shared across requests, never mutated afterwards.
type Matcher struct {
	patterns map[string][]pattern
}

// NewMatcher compiles a pattern set for every skill reachable through any
// role's universe.
func NewMatcher(dict *skills.Dictionary) *Matcher {
	m := &Matcher{patterns: make(map[string][]pattern)}
	for _, roleName := range dict.RoleOrder {
		role := dict.Roles[roleName]
		for _, skill := range role.Universe() {
			if _, ok := m.patterns[skill]; ok {
				continue
			}
			m.patterns[skill] = compilePatterns(skill, dict.AliasesFor(skill))
		}
	}
	return m
}

func compilePatterns(canonical string, aliases []string) []pattern {
	raws := append([]string{strings.ToLower(canonical)}, aliases...)
	out := make([]pattern, 0, len(raws))
	for _, raw := range raws {
		re, err := regexp.Compile(regexp.QuoteMeta(raw))
		if err != nil {
			telemetry.Error("matcher.compile_failed", map[string]any{
				"skill":   canonical,
				"pattern": raw,
				"err":     err.Error(),
			})
			re = nil
		}
		out = append(out, pattern{raw: raw, re: re})
	}
	return out
}

// Count returns the number of whole-token occurrences of the skill (its own
// form plus all aliases) in normalized text. Unknown skills count zero.
func (m *Matcher) Count(text, canonical string) int {
	total := 0
	for _, p := range m.patterns[canonical] {
		if p.re == nil {
			total += strings.Count(text, p.raw)
			continue
		}
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if boundedLeft(text, loc[0], p.raw) && boundedRight(text, loc[1], p.raw) {
				total++
			}
		}
	}
	return total
}

// boundedLeft applies the left-edge token rule. Patterns that begin with a
// word rune must not be preceded by another word rune; patterns that begin
// with punctuation (e.g. ".net"-style names) require whitespace or
// start-of-text so they cannot bind to the tail of an adjacent token.
func boundedLeft(text string, start int, raw string) bool {
	if start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	first, _ := utf8.DecodeRuneInString(raw)
	if isWordRune(first) {
		return !isWordRune(prev)
	}
	return unicode.IsSpace(prev)
}

// boundedRight is the symmetric right-edge rule, additionally allowing a
// closing punctuation rune after patterns that end in a non-word rune.
func boundedRight(text string, end int, raw string) bool {
	if end >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	last, _ := utf8.DecodeLastRuneInString(raw)
	if isWordRune(last) {
		return !isWordRune(next)
	}
	return unicode.IsSpace(next) || strings.ContainsRune(closingPunct, next)
}
