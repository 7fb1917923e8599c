package scoring

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

func TestComputeRoleMatchesRanking(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Analyst")
	p := parser.Profile{JobRole: "Data Analyst", FoundSkills: role.ATSKeywords}

	matches := ComputeRoleMatches(p, dict)
	require.Len(t, matches, len(dict.RoleOrder))

	assert.Equal(t, "Data Analyst", matches[0].Role)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, "✔", matches[0].Icon)
	assert.True(t, sort.SliceIsSorted(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	}))
}

func TestComputeRoleMatchesEmptyProfile(t *testing.T) {
	dict := skills.Default()
	matches := ComputeRoleMatches(parser.Profile{JobRole: "Data Analyst"}, dict)

	require.Len(t, matches, len(dict.RoleOrder))
	for _, m := range matches {
		assert.Equal(t, 0, m.Score)
		assert.Equal(t, "✖", m.Icon)
	}
	// All-zero ties keep dictionary declaration order.
	for i, roleName := range dict.RoleOrder {
		assert.Equal(t, roleName, matches[i].Role)
	}
}

func TestComputeRoleMatchesDeterministic(t *testing.T) {
	dict := skills.Default()
	p := parser.Profile{JobRole: "Data Scientist", FoundSkills: []string{"Python", "SQL", "Git"}}

	first := ComputeRoleMatches(p, dict)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeRoleMatches(p, dict))
	}
}

func TestMatchIconBands(t *testing.T) {
	assert.Equal(t, "✔", matchIcon(75))
	assert.Equal(t, "⚠", matchIcon(74))
	assert.Equal(t, "⚠", matchIcon(50))
	assert.Equal(t, "✖", matchIcon(49))
}

func TestRecommendBestRole(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Analyst")
	p := parser.Profile{
		JobRole:     "Data Analyst",
		FoundSkills: role.ATSKeywords,
		Sections:    map[string]string{"Projects": "Dashboard work"},
	}

	rec := Recommend(p, dict)
	require.NotNil(t, rec)
	assert.Equal(t, "Data Analyst", rec.Role)
	assert.Equal(t, 100, rec.Score)
	assert.Equal(t, role.Description, rec.Description)
	assert.Equal(t, role.SampleJobs, rec.SampleJobs)
	require.NotEmpty(t, rec.Reasons)
	assert.LessOrEqual(t, len(rec.Reasons), 5)
	assert.Contains(t, rec.Reasons[0], "You have strong skills in")
	assert.Empty(t, rec.MissingTags)
	assert.Len(t, rec.AllMatches, len(dict.RoleOrder))
}

func TestRecommendPartialProfileSplitsFoundAndMissing(t *testing.T) {
	dict := skills.Default()
	p := parser.Profile{
		JobRole:     "Data Analyst",
		FoundSkills: []string{"SQL", "Excel", "Tableau"},
	}

	rec := Recommend(p, dict)
	require.NotNil(t, rec)
	assert.Equal(t, "Data Analyst", rec.Role)

	assert.Equal(t, []string{
		"Good Excel proficiency",
		"Good SQL proficiency",
		"Good Tableau proficiency",
	}, rec.Reasons)

	assert.Equal(t, []string{
		"A/B Testing", "BigQuery", "Dashboard",
		"Data Cleaning", "Data Visualization", "Data Warehousing",
	}, rec.MissingTags)
	assert.NotContains(t, rec.MissingTags, "SQL")
	assert.NotContains(t, rec.MissingTags, "Excel")
	assert.NotContains(t, rec.MissingTags, "Tableau")
}

func TestRecommendEmptyProfileStillRecommends(t *testing.T) {
	rec := Recommend(parser.Profile{JobRole: "Data Scientist"}, skills.Default())
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.Score)
	assert.Equal(t, []string{"Your skill profile shows potential for this role"}, rec.Reasons)
	assert.Len(t, rec.MissingTags, 6)
	assert.True(t, sort.StringsAreSorted(rec.MissingTags))
}
