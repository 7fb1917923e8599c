package parser

import (
	"sort"

	"skillgap-backend/internal/skills"
)

// Detection reports which of a role's skills occur in a document.
// Found and Missing partition the role universe; Counts carries occurrence
// totals for found skills only.
type Detection struct {
	Found   []string
	Missing []string
	Counts  map[string]int
}

// Detector scans normalized text for a role's skill universe using the
// shared precompiled matcher.
type Detector struct {
	dict    *skills.Dictionary
	matcher *Matcher
}

// NewDetector builds a detector over the dictionary. Pattern compilation
// happens here, once, not per request.
func NewDetector(dict *skills.Dictionary) *Detector {
	return &Detector{dict: dict, matcher: NewMatcher(dict)}
}

// Detect matches the role's universe against the raw text. An unknown role
// yields an empty universe and therefore empty sets, never an error.
func (d *Detector) Detect(rawText, roleName string) Detection {
	normalized := Normalize(rawText)
	role, _ := d.dict.Role(roleName)

	det := Detection{Counts: make(map[string]int)}
	for _, skill := range role.Universe() {
		if n := d.matcher.Count(normalized, skill); n > 0 {
			det.Found = append(det.Found, skill)
			det.Counts[skill] = n
		} else {
			det.Missing = append(det.Missing, skill)
		}
	}
	sort.Strings(det.Found)
	sort.Strings(det.Missing)
	return det
}
