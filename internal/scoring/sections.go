package scoring

import (
	"math"
	"strings"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// SectionScore grades one named resume area for ATS compatibility.
type SectionScore struct {
	Section string `json:"section"`
	Score   int    `json:"score"`
	Status  string `json:"status"`
	Color   string `json:"color"`
	Prefix  string `json:"prefix"`
}

// SectionScores derives the five per-section scores from section keyword
// density and structural presence.
func SectionScores(p parser.Profile, dict *skills.Dictionary) []SectionScore {
	role, _ := dict.Role(p.JobRole)
	techCount := len(role.TechnicalSkills)

	skillsScore := skillsSectionAbsent
	if content, ok := p.Sections["Skills"]; ok {
		mentioned := countMentions(role.TechnicalSkills, content)
		skillsScore = ratioScore(mentioned, float64(techCount)*skillsSectionRatio)
	}

	projectsScore := projectsSectionAbsent
	if content := p.Sections["Projects"]; content != "" {
		mentioned := countMentions(p.FoundSkills, content)
		projectsScore = ratioScore(mentioned, float64(techCount)*projectsSectionRatio)
		projectsScore = max(projectsScore, projectsSectionFloor)
	}

	experienceScore := experienceSectionAbsent
	if content := p.Sections["Experience"]; content != "" {
		mentioned := countMentions(p.FoundSkills, content)
		experienceScore = ratioScore(mentioned, float64(techCount)*experienceSectionRatio)
		experienceScore = max(experienceScore, experienceSectionFloor)
	}

	totalMentions := 0
	for _, n := range p.KeywordCounts {
		totalMentions += n
	}
	keywordScore := min(int(float64(totalMentions)/float64(max(techCount, 1))*keywordDensityScale), 100)
	keywordScore = max(keywordScore, keywordDensityFloor)

	formattingScore := min(len(p.Sections)*100/formattingSectionTarget, 100)
	formattingScore = max(formattingScore, formattingFloor)

	return []SectionScore{
		entry("Skills Section", skillsScore, "+"),
		entry("Projects", projectsScore, plusIf(projectsScore >= sectionPrefixCut)),
		entry("Experience", experienceScore, plusIf(experienceScore >= sectionPrefixCut)),
		entry("Keywords Density", keywordScore, plusIf(keywordScore >= keywordPrefixCut)),
		entry("Formatting", formattingScore, "+"),
	}
}

func entry(section string, score int, prefix string) SectionScore {
	return SectionScore{
		Section: section,
		Score:   score,
		Status:  statusLabel(score),
		Color:   statusColor(score),
		Prefix:  prefix,
	}
}

// countMentions counts how many of the skills appear as lowercase substrings
// of the section content.
func countMentions(candidates []string, content string) int {
	lowered := strings.ToLower(content)
	n := 0
	for _, s := range candidates {
		if strings.Contains(lowered, strings.ToLower(s)) {
			n++
		}
	}
	return n
}

// ratioScore scores mentions against a scaled denominator with a floor of
// one to avoid division by zero on roles with few technical skills.
func ratioScore(mentions int, denominator float64) int {
	return min(int(float64(mentions)/math.Max(denominator, 1)*100), 100)
}

func plusIf(cond bool) string {
	if cond {
		return "+"
	}
	return "-"
}
