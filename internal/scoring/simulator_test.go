package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateBoost(t *testing.T) {
	sim := Simulate(50, []string{"Spark", "Tableau", "NLP", "Git"})

	assert.Equal(t, 50, sim.OriginalScore)
	assert.Equal(t, 65, sim.SimulatedScore)
	assert.Equal(t, "Spark + Tableau + NLP", sim.KeywordsAdded)
	assert.Contains(t, sim.Insight, "Spark + Tableau + NLP")
}

func TestSimulateCappedAt98(t *testing.T) {
	sim := Simulate(90, []string{"Spark", "Tableau", "NLP"})
	assert.Equal(t, 98, sim.SimulatedScore)
}

func TestSimulateNoMissingKeywords(t *testing.T) {
	sim := Simulate(72, nil)
	assert.Equal(t, 72, sim.SimulatedScore)
	assert.Equal(t, "N/A", sim.KeywordsAdded)
}

func TestSimulateSingleKeyword(t *testing.T) {
	sim := Simulate(40, []string{"Spark"})
	assert.Equal(t, 45, sim.SimulatedScore)
	assert.Equal(t, "Spark", sim.KeywordsAdded)
}

func TestSimulateNeverBelowOriginal(t *testing.T) {
	for score := 0; score <= 100; score += 10 {
		for _, missing := range [][]string{nil, {"A"}, {"A", "B", "C", "D"}} {
			sim := Simulate(score, missing)
			assert.GreaterOrEqual(t, sim.SimulatedScore, score)
			if score <= simulatorScoreCap {
				assert.LessOrEqual(t, sim.SimulatedScore, simulatorScoreCap)
			}
		}
	}
}
