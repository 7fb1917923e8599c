package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

func TestATSScoreEmptyProfile(t *testing.T) {
	dict := skills.Default()
	p := parser.Profile{JobRole: "Data Scientist"}

	assert.Equal(t, 0, ATSScore(p, dict))
}

func TestATSScoreAllKeywordsFound(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Scientist")
	p := parser.Profile{JobRole: "Data Scientist", FoundSkills: role.ATSKeywords}

	assert.Equal(t, 100, ATSScore(p, dict))
}

func TestATSScorePartial(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Scientist")
	half := role.ATSKeywords[:10]
	p := parser.Profile{JobRole: "Data Scientist", FoundSkills: half}

	want := 10 * 100 / len(role.ATSKeywords)
	assert.Equal(t, want, ATSScore(p, dict))
}

func TestATSScoreMatchesKeywordOverlap(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Cloud Engineer")
	p := parser.Profile{
		JobRole:     "Cloud Engineer",
		FoundSkills: []string{"AWS", "Docker", "Python"},
	}

	// All three found skills are ranking keywords.
	assert.Equal(t, 3*100/len(role.ATSKeywords), ATSScore(p, dict))
}

func TestATSScoreUnknownRole(t *testing.T) {
	p := parser.Profile{JobRole: "Astronaut", FoundSkills: []string{"Python"}}
	assert.Equal(t, 0, ATSScore(p, skills.Default()))
}

func TestATSScoreRange(t *testing.T) {
	dict := skills.Default()
	for _, roleName := range dict.RoleOrder {
		role, _ := dict.Role(roleName)
		for i := 0; i <= len(role.ATSKeywords); i += 3 {
			p := parser.Profile{JobRole: roleName, FoundSkills: role.ATSKeywords[:i]}
			score := ATSScore(p, dict)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestMatchLabelBands(t *testing.T) {
	assert.Equal(t, "Strong Match", MatchLabel(100))
	assert.Equal(t, "Strong Match", MatchLabel(80))
	assert.Equal(t, "Moderate Match", MatchLabel(79))
	assert.Equal(t, "Moderate Match", MatchLabel(60))
	assert.Equal(t, "Weak Match", MatchLabel(59))
	assert.Equal(t, "Weak Match", MatchLabel(0))
}
