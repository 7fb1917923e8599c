package scoring

import (
	"strings"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// ComparisonPair holds one resume sub-score next to its industry average.
type ComparisonPair struct {
	Resume   int `json:"resume"`
	Industry int `json:"industry"`
}

// Comparison summarizes how the resume stacks up against industry-average
// benchmarks for the target role.
type Comparison struct {
	Technical       ComparisonPair `json:"technical"`
	Soft            ComparisonPair `json:"soft"`
	Projects        ComparisonPair `json:"projects"`
	Profile         string         `json:"profile"`
	ExperienceLevel string         `json:"experienceLevel"`
	Strengths       string         `json:"strengths"`
	Weaknesses      string         `json:"weaknesses"`
}

// Compare computes technical/soft/project sub-scores as found-to-required
// ratios (a structural heuristic for projects) and derives strengths and
// weaknesses from whether each sub-score meets its benchmark.
func Compare(p parser.Profile, dict *skills.Dictionary) Comparison {
	role, _ := dict.Role(p.JobRole)
	avg := role.IndustryAvg
	if avg == (skills.Benchmark{}) {
		avg = skills.Benchmark{Technical: defaultAvgTechnical, Soft: defaultAvgSoft, Projects: defaultAvgProjects}
	}

	techScore := clampScore(len(p.FoundTechnical) * 100 / max(len(role.TechnicalSkills), 1))
	softScore := clampScore(len(p.FoundSoft) * 100 / max(len(role.SoftSkills), 1))

	projectsScore := comparisonProjectsAbsent
	if content, ok := p.Sections["Projects"]; ok {
		mentioned := countMentions(p.FoundTechnical, content)
		projectsScore = ratioScore(mentioned, float64(len(role.TechnicalSkills))*comparisonProjectsRatio)
		projectsScore = max(projectsScore, comparisonProjectsFloor)
	}

	var strengths, weaknesses []string
	if techScore >= avg.Technical {
		strengths = append(strengths, strings.Join(firstN(p.FoundTechnical, 3), ", "))
	} else {
		weaknesses = append(weaknesses, "Technical Skills")
	}
	if softScore >= avg.Soft {
		if len(p.FoundSoft) > 0 {
			strengths = append(strengths, strings.Join(firstN(p.FoundSoft, 2), ", "))
		}
	} else {
		weaknesses = append(weaknesses, "Soft Skills")
	}
	for _, s := range firstN(p.MissingTechnical, 3) {
		if !contains(weaknesses, s) {
			weaknesses = append(weaknesses, s)
		}
	}

	return Comparison{
		Technical:       ComparisonPair{Resume: techScore, Industry: avg.Technical},
		Soft:            ComparisonPair{Resume: softScore, Industry: avg.Soft},
		Projects:        ComparisonPair{Resume: projectsScore, Industry: avg.Projects},
		Profile:         profileName(p.JobRole, techScore),
		ExperienceLevel: p.ExperienceLevel,
		Strengths:       joinOrNA(firstN(strengths, 3)),
		Weaknesses:      joinOrNA(firstN(weaknesses, 3)),
	}
}

// profileName derives a short profile tag from the role key when the
// technical signal is strong enough.
func profileName(jobRole string, techScore int) string {
	if techScore <= comparisonProfileCut {
		return "General"
	}
	profile := strings.ReplaceAll(jobRole, "Engineer", "")
	profile = strings.ReplaceAll(profile, "Scientist", "/ Data Science")
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return "Technology"
	}
	return profile
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func contains(items []string, target string) bool {
	for _, s := range items {
		if s == target {
			return true
		}
	}
	return false
}

func joinOrNA(items []string) string {
	if len(items) == 0 {
		return "N/A"
	}
	return strings.Join(items, ", ")
}
