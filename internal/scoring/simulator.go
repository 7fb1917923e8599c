package scoring

import "strings"

// Simulation projects the ATS score after adding the top missing keywords.
type Simulation struct {
	OriginalScore  int    `json:"originalScore"`
	SimulatedScore int    `json:"simulatedScore"`
	KeywordsAdded  string `json:"keywordsAdded"`
	Insight        string `json:"insight"`
}

// Simulate estimates the score lift from incorporating up to three missing
// keywords. The simulated score never drops below the original and never
// exceeds the cap.
func Simulate(atsScore int, missingKeywords []string) Simulation {
	top := missingKeywords
	if len(top) > simulatorKeywords {
		top = top[:simulatorKeywords]
	}

	boost := min(len(top)*simulatorPerKeyword, simulatorBoostCap)
	simulated := min(atsScore+boost, simulatorScoreCap)
	if simulated < atsScore {
		simulated = atsScore
	}

	keywordsText := "N/A"
	if len(top) > 0 {
		keywordsText = strings.Join(top, " + ")
	}

	return Simulation{
		OriginalScore:  atsScore,
		SimulatedScore: simulated,
		KeywordsAdded:  keywordsText,
		Insight:        "Incorporating missing keywords and highlighting a project related to " + keywordsText + " will increase your ATS score.",
	}
}
