// Package courses matches detected skill gaps against the course catalog
// and produces a prioritized recommendation list.
package courses

import (
	"fmt"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// defaultLimit caps the recommendation list at a three-by-three grid.
const defaultLimit = 9

// lowMentionMax is the mention count at or below which a found skill still
// warrants a refresher course.
const lowMentionMax = 1

// Recommendation is one course suggestion tied to a specific skill gap.
type Recommendation struct {
	skills.Course
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// Recommend builds up to limit course suggestions. Missing skills come
// first, ordered so gaps that also appear in the role's ranking keywords
// lead; found-but-barely-mentioned skills fill the remaining slots. A limit
// of zero or less falls back to the default.
func Recommend(p parser.Profile, dict *skills.Dictionary, limit int) []Recommendation {
	if limit <= 0 {
		limit = defaultLimit
	}

	role, _ := dict.Role(p.JobRole)
	atsKeywords := make(map[string]bool, len(role.ATSKeywords))
	for _, kw := range role.ATSKeywords {
		atsKeywords[kw] = true
	}

	var priorityMissing, otherMissing []string
	inPriority := make(map[string]bool)
	for _, skill := range p.MissingTechnical {
		if atsKeywords[skill] {
			priorityMissing = append(priorityMissing, skill)
			inPriority[skill] = true
		} else {
			otherMissing = append(otherMissing, skill)
		}
	}
	for _, skill := range p.MissingSkills {
		if atsKeywords[skill] && !inPriority[skill] {
			priorityMissing = append(priorityMissing, skill)
			inPriority[skill] = true
		}
	}
	ordered := append(priorityMissing, otherMissing...)

	recs := make([]Recommendation, 0, limit)
	seenTitles := make(map[string]bool)

	for _, skill := range ordered {
		if len(recs) >= limit {
			break
		}
		course, ok := dict.Catalog[skill]
		if !ok || seenTitles[course.Title] {
			continue
		}
		seenTitles[course.Title] = true
		recs = append(recs, Recommendation{
			Course:   course,
			Skill:    skill,
			Priority: "high",
			Reason:   fmt.Sprintf("Missing from your resume — critical for %s", p.JobRole),
		})
	}

	for _, skill := range p.FoundSkills {
		if len(recs) >= limit {
			break
		}
		if p.KeywordCounts[skill] > lowMentionMax {
			continue
		}
		course, ok := dict.Catalog[skill]
		if !ok || seenTitles[course.Title] {
			continue
		}
		seenTitles[course.Title] = true
		recs = append(recs, Recommendation{
			Course:   course,
			Skill:    skill,
			Priority: "medium",
			Reason:   fmt.Sprintf("Mentioned only %d time(s) — strengthen this skill", p.KeywordCounts[skill]),
		})
	}

	return recs
}
