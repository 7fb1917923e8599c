package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

const analyzerSample = `Summary
Data scientist with 4 years of experience.
Skills
Python, SQL, Machine Learning, Pandas, NumPy, Statistics
Projects
Churn model in Python using Pandas.
Experience at Acme building SQL pipelines.
Education
MS Statistics`

func TestAnalyzeBundlesConsistentResult(t *testing.T) {
	dict := skills.Default()
	profile := parser.New(dict).Parse(analyzerSample, "Data Scientist")

	result := Analyze(profile, dict)

	assert.Equal(t, ATSScore(profile, dict), result.ATSScore)
	assert.Equal(t, MatchLabel(result.ATSScore), result.MatchLabel)
	assert.Equal(t, result.ATSScore, result.Simulator.OriginalScore)
	assert.Equal(t, 100-result.ATSScore, result.Risk.RejectionPct)
	assert.Len(t, result.SectionScores, 5)
	assert.Len(t, result.RoleMatches, len(dict.RoleOrder))
	require.NotNil(t, result.RecommendedRole)
	assert.Equal(t, result.RoleMatches[0].Role, result.RecommendedRole.Role)

	// Missing keyword shortlist feeds the simulator.
	if len(result.MissingKeywords) > 0 {
		assert.Contains(t, result.Simulator.KeywordsAdded, result.MissingKeywords[0])
	}

	assert.Equal(t, profile.FoundSkills, result.Profile.FoundSkills)
	assert.Equal(t, profile.MissingSkills, result.Profile.MissingSkills)
	assert.Equal(t, profile.ExperienceLevel, result.Profile.ExperienceLevel)
	assert.Equal(t, profile.SectionNames(), result.Profile.SectionsDetected)
}

func TestAnalyzeEmptyDocumentFloors(t *testing.T) {
	dict := skills.Default()
	profile := parser.New(dict).Parse("", "Data Scientist")

	result := Analyze(profile, dict)

	assert.Equal(t, 0, result.ATSScore)
	assert.Equal(t, "Weak Match", result.MatchLabel)
	assert.Equal(t, "High", result.Risk.Level)

	scores := map[string]int{}
	for _, s := range result.SectionScores {
		scores[s.Section] = s.Score
	}
	assert.Equal(t, skillsSectionAbsent, scores["Skills Section"])
	assert.Equal(t, projectsSectionAbsent, scores["Projects"])
	assert.Equal(t, experienceSectionAbsent, scores["Experience"])
	assert.Equal(t, keywordDensityFloor, scores["Keywords Density"])
	assert.Equal(t, formattingFloor, scores["Formatting"])
}

func TestAnalyzeDeterministic(t *testing.T) {
	dict := skills.Default()
	profile := parser.New(dict).Parse(analyzerSample, "Data Scientist")

	first := Analyze(profile, dict)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Analyze(profile, dict))
	}
}
