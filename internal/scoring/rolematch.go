package scoring

import (
	"sort"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// RoleMatch scores the profile's found skills against one role's ATS
// keywords.
type RoleMatch struct {
	Role  string `json:"role"`
	Score int    `json:"score"`
	Icon  string `json:"icon"`
}

// ComputeRoleMatches ranks every dictionary role by ATS-keyword overlap with
// the found-skill set, highest first. Ties keep dictionary declaration
// order, so repeated runs over the same profile are identical.
func ComputeRoleMatches(p parser.Profile, dict *skills.Dictionary) []RoleMatch {
	foundSet := toSet(p.FoundSkills)

	results := make([]RoleMatch, 0, len(dict.RoleOrder))
	for _, roleName := range dict.RoleOrder {
		role := dict.Roles[roleName]
		if len(role.ATSKeywords) == 0 {
			continue
		}
		matched := 0
		for _, kw := range role.ATSKeywords {
			if _, ok := foundSet[kw]; ok {
				matched++
			}
		}
		score := clampScore(matched * 100 / len(role.ATSKeywords))
		results = append(results, RoleMatch{Role: roleName, Score: score, Icon: matchIcon(score)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func matchIcon(score int) string {
	switch {
	case score >= rolePassMin:
		return "✔"
	case score >= roleCautionMin:
		return "⚠"
	default:
		return "✖"
	}
}
