package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

func TestCompareStrongProfile(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Scientist")

	p := parser.Profile{
		JobRole:        "Data Scientist",
		FoundTechnical: role.TechnicalSkills[:22],
		FoundSoft:      role.SoftSkills[:6],
		Sections:       map[string]string{"Projects": "Built models in Python with Pandas and SQL"},
	}

	cmp := Compare(p, dict)

	assert.Equal(t, 22*100/len(role.TechnicalSkills), cmp.Technical.Resume)
	assert.Equal(t, role.IndustryAvg.Technical, cmp.Technical.Industry)
	assert.Equal(t, 6*100/len(role.SoftSkills), cmp.Soft.Resume)
	assert.GreaterOrEqual(t, cmp.Projects.Resume, comparisonProjectsFloor)
	assert.NotEqual(t, "N/A", cmp.Strengths)
	assert.NotEqual(t, "General", cmp.Profile)
}

func TestCompareWeakProfile(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Scientist")

	p := parser.Profile{
		JobRole:          "Data Scientist",
		FoundTechnical:   role.TechnicalSkills[:2],
		MissingTechnical: role.TechnicalSkills[2:5],
	}

	cmp := Compare(p, dict)

	assert.Equal(t, 2*100/len(role.TechnicalSkills), cmp.Technical.Resume)
	assert.Equal(t, comparisonProjectsAbsent, cmp.Projects.Resume)
	assert.Equal(t, "General", cmp.Profile)
	assert.Equal(t, "N/A", cmp.Strengths)
	assert.Contains(t, cmp.Weaknesses, "Technical Skills")
	assert.Contains(t, cmp.Weaknesses, "Soft Skills")
}

func TestCompareUnknownRoleUsesDefaults(t *testing.T) {
	cmp := Compare(parser.Profile{JobRole: "Astronaut"}, skills.Default())

	assert.Equal(t, defaultAvgTechnical, cmp.Technical.Industry)
	assert.Equal(t, defaultAvgSoft, cmp.Soft.Industry)
	assert.Equal(t, defaultAvgProjects, cmp.Projects.Industry)
}

func TestProfileName(t *testing.T) {
	assert.Equal(t, "General", profileName("Data Scientist", 70))
	assert.Equal(t, "Data / Data Science", profileName("Data Scientist", 80))
	assert.Equal(t, "Software", profileName("Software Engineer", 90))
	assert.Equal(t, "Technology", profileName("Engineer", 90))
}

func TestCompareWeaknessLimit(t *testing.T) {
	dict := skills.Default()
	role, _ := dict.Role("Data Analyst")
	p := parser.Profile{
		JobRole:          "Data Analyst",
		MissingTechnical: role.TechnicalSkills,
	}

	cmp := Compare(p, dict)
	// Two category names plus at most one missing skill after the cap.
	assert.NotEqual(t, "N/A", cmp.Weaknesses)
}
