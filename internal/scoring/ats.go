package scoring

import (
	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// ATSScore is the percentage of the role's ATS keywords found in the
// profile, clamped to [0,100]. A role with no ATS keywords scores 0.
func ATSScore(p parser.Profile, dict *skills.Dictionary) int {
	role, _ := dict.Role(p.JobRole)
	if len(role.ATSKeywords) == 0 {
		return 0
	}
	found := 0
	foundSet := toSet(p.FoundSkills)
	for _, kw := range role.ATSKeywords {
		if _, ok := foundSet[kw]; ok {
			found++
		}
	}
	return clampScore(found * 100 / len(role.ATSKeywords))
}

// MatchLabel bands an ATS score into a display label.
func MatchLabel(atsScore int) string {
	switch {
	case atsScore >= statusStrongMin:
		return "Strong Match"
	case atsScore >= statusModerateMin:
		return "Moderate Match"
	default:
		return "Weak Match"
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
