package scoring

import (
	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// ProfileSummary is the client-facing slice of a parsed profile. Raw resume
// text and section contents stay server-side.
type ProfileSummary struct {
	FoundSkills      []string `json:"foundSkills"`
	MissingSkills    []string `json:"missingSkills"`
	FoundTechnical   []string `json:"foundTechnical"`
	FoundSoft        []string `json:"foundSoft"`
	MissingTechnical []string `json:"missingTechnical"`
	MissingSoft      []string `json:"missingSoft"`
	ExperienceLevel  string   `json:"experienceLevel"`
	JobRole          string   `json:"jobRole"`
	SectionsDetected []string `json:"sectionsDetected"`
}

// Result bundles every metric the analysis pipeline produces for one resume.
type Result struct {
	ATSScore        int              `json:"atsScore"`
	MatchLabel      string           `json:"matchLabel"`
	SectionScores   []SectionScore   `json:"sectionScores"`
	Risk            Risk             `json:"riskAssessment"`
	KeywordDensity  []KeywordDensity `json:"keywordDensity"`
	MissingKeywords []string         `json:"missingKeywords"`
	RoleMatches     []RoleMatch      `json:"roleMatches"`
	Simulator       Simulation       `json:"simulator"`
	SkillComparison Comparison       `json:"skillComparison"`
	RecommendedRole *RecommendedRole `json:"recommendedRole"`
	LearningRoadmap Roadmap          `json:"learningRoadmap"`
	Insight         string           `json:"aiInsight"`
	Profile         ProfileSummary   `json:"parsedData"`
}

// Analyze runs the full pipeline over a parsed profile. Pure function of
// its inputs; safe for concurrent use.
func Analyze(p parser.Profile, dict *skills.Dictionary) Result {
	atsScore := ATSScore(p, dict)
	density, missingKeywords := ComputeKeywordDensity(p, dict)

	return Result{
		ATSScore:        atsScore,
		MatchLabel:      MatchLabel(atsScore),
		SectionScores:   SectionScores(p, dict),
		Risk:            ComputeRisk(atsScore),
		KeywordDensity:  density,
		MissingKeywords: missingKeywords,
		RoleMatches:     ComputeRoleMatches(p, dict),
		Simulator:       Simulate(atsScore, missingKeywords),
		SkillComparison: Compare(p, dict),
		RecommendedRole: Recommend(p, dict),
		LearningRoadmap: BuildRoadmap(p),
		Insight:         Insight(p, atsScore),
		Profile: ProfileSummary{
			FoundSkills:      p.FoundSkills,
			MissingSkills:    p.MissingSkills,
			FoundTechnical:   p.FoundTechnical,
			FoundSoft:        p.FoundSoft,
			MissingTechnical: p.MissingTechnical,
			MissingSoft:      p.MissingSoft,
			ExperienceLevel:  p.ExperienceLevel,
			JobRole:          p.JobRole,
			SectionsDetected: p.SectionNames(),
		},
	}
}
