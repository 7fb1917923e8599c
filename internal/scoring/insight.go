package scoring

import (
	"fmt"
	"strings"

	"skillgap-backend/internal/parser"
)

// Insight produces a one-sentence narrative summary keyed off the overall
// alignment score and the top missing technical skills.
func Insight(p parser.Profile, atsScore int) string {
	missing := firstN(p.MissingTechnical, 3)

	switch {
	case atsScore >= insightStrongMin:
		return fmt.Sprintf("Your resume is well-aligned with the target role. Focus on strengthening %s to reach a top-tier score.",
			strings.Join(firstN(missing, 2), ", "))
	case atsScore >= insightModerateMin:
		topMissing := "relevant certifications"
		if len(missing) > 0 {
			topMissing = strings.Join(firstN(missing, 2), ", ")
		}
		return fmt.Sprintf("Incorporating %s and highlighting related projects will significantly boost your ATS compatibility.", topMissing)
	default:
		topMissing := "key industry skills"
		if len(missing) > 0 {
			topMissing = strings.Join(missing, ", ")
		}
		return fmt.Sprintf("Your resume needs significant improvements. Prioritize learning %s and adding relevant project experience.", topMissing)
	}
}
