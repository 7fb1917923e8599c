package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

func TestRecommendPrioritizesRankedGaps(t *testing.T) {
	dict := skills.Default()
	p := parser.Profile{
		JobRole:          "Data Scientist",
		MissingSkills:    []string{"Spark", "Tableau", "Clustering"},
		MissingTechnical: []string{"Spark", "Tableau", "Clustering"},
		KeywordCounts:    map[string]int{},
	}

	recs := Recommend(p, dict, 0)
	require.NotEmpty(t, recs)

	// Spark and Tableau are ranking keywords for the role; Clustering is not.
	var sparkIdx, clusteringIdx int = -1, -1
	for i, r := range recs {
		switch r.Skill {
		case "Spark":
			sparkIdx = i
		case "Clustering":
			clusteringIdx = i
		}
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Reason)
	}
	require.NotEqual(t, -1, sparkIdx)
	if clusteringIdx != -1 {
		assert.Less(t, sparkIdx, clusteringIdx)
	}

	for _, r := range recs {
		assert.Equal(t, "high", r.Priority)
		assert.Contains(t, r.Reason, "critical for Data Scientist")
	}
}

func TestRecommendIncludesLowMentionSkills(t *testing.T) {
	dict := skills.Default()
	p := parser.Profile{
		JobRole:       "Data Analyst",
		FoundSkills:   []string{"SQL", "Python"},
		KeywordCounts: map[string]int{"SQL": 1, "Python": 5},
	}

	recs := Recommend(p, dict, 0)

	var sqlRec *Recommendation
	for i := range recs {
		if recs[i].Skill == "SQL" {
			sqlRec = &recs[i]
		}
		assert.NotEqual(t, "Python", recs[i].Skill, "well-mentioned skill should not get a refresher")
	}
	require.NotNil(t, sqlRec)
	assert.Equal(t, "medium", sqlRec.Priority)
	assert.Contains(t, sqlRec.Reason, "Mentioned only 1 time(s)")
}

func TestRecommendRespectsLimit(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Scientist")
	p := parser.Profile{
		JobRole:          "Data Scientist",
		MissingSkills:    role.Universe(),
		MissingTechnical: role.TechnicalSkills,
		KeywordCounts:    map[string]int{},
	}

	assert.LessOrEqual(t, len(Recommend(p, dict, 0)), defaultLimit)
	assert.LessOrEqual(t, len(Recommend(p, dict, 4)), 4)
}

func TestRecommendDeduplicatesByTitle(t *testing.T) {
	dict := skills.Default()
	p := parser.Profile{
		JobRole:          "Data Scientist",
		MissingSkills:    []string{"Machine Learning", "Deep Learning"},
		MissingTechnical: []string{"Machine Learning", "Deep Learning"},
		KeywordCounts:    map[string]int{},
	}

	recs := Recommend(p, dict, 0)
	seen := map[string]bool{}
	for _, r := range recs {
		assert.False(t, seen[r.Title], "duplicate course title %q", r.Title)
		seen[r.Title] = true
	}
}

func TestRecommendEmptyProfile(t *testing.T) {
	recs := Recommend(parser.Profile{JobRole: "Data Scientist"}, skills.Default(), 0)
	assert.Empty(t, recs)
}
