package scoring

import (
	"fmt"
	"sort"
	"strings"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// RecommendedRole is the best-fit role with supporting evidence.
type RecommendedRole struct {
	Role        string              `json:"role"`
	Description string              `json:"description"`
	Score       int                 `json:"score"`
	Reasons     []string            `json:"reasons"`
	MissingTags []string            `json:"missingTags"`
	SampleJobs  []skills.JobPosting `json:"sampleJobs"`
	AllMatches  []RoleMatch         `json:"allMatches"`
}

// Recommend picks the highest-ranked role and explains the fit in terms of
// the skills the resume already demonstrates. Returns nil when no role has
// ranking keywords.
func Recommend(p parser.Profile, dict *skills.Dictionary) *RecommendedRole {
	matches := ComputeRoleMatches(p, dict)
	if len(matches) == 0 {
		return nil
	}

	best := matches[0]
	role, _ := dict.Role(best.Role)

	found := toSet(p.FoundSkills)
	var foundTech []string
	for _, skill := range role.TechnicalSkills {
		if _, ok := found[skill]; ok {
			foundTech = append(foundTech, skill)
		}
	}
	sort.Strings(foundTech)

	var reasons []string
	topFound := firstN(foundTech, 4)
	for _, skill := range topFound {
		reasons = append(reasons, fmt.Sprintf("Good %s proficiency", skill))
	}
	if float64(len(foundTech)) >= float64(len(role.TechnicalSkills))*recommendedStrongRatio {
		lead := fmt.Sprintf("You have strong skills in %s, aligning well with this role", strings.Join(firstN(topFound, 2), ", "))
		reasons = append([]string{lead}, reasons...)
	}
	if _, ok := p.Sections["Projects"]; ok {
		reasons = append(reasons, "Projects involving relevant experience")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Your skill profile shows potential for this role")
	}

	var missingTags []string
	for _, kw := range role.ATSKeywords {
		if _, ok := found[kw]; !ok {
			missingTags = append(missingTags, kw)
		}
	}
	sort.Strings(missingTags)

	return &RecommendedRole{
		Role:        best.Role,
		Description: role.Description,
		Score:       best.Score,
		Reasons:     firstN(reasons, 5),
		MissingTags: firstN(missingTags, 6),
		SampleJobs:  role.SampleJobs,
		AllMatches:  matches,
	}
}
