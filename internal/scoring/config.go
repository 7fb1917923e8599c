// Package scoring derives every downstream metric from a parsed profile:
// ATS score, per-section scores, rejection risk, keyword density, role
// ranking, the what-if simulator, skill comparison, the recommended role,
// the learning roadmap, and the insight line. Every function here is pure
// and total; empty profiles and unknown roles degrade to documented floors
// rather than failing.
package scoring

// Product-tuned scoring constants. These are heuristics, not derived values;
// keep them here so they can be revisited without touching control flow.
const (
	// Status label bands.
	statusStrongMin   = 80
	statusModerateMin = 60
	statusNeedsMin    = 40

	// Color bands.
	colorGreenMin  = 80
	colorYellowMin = 50

	// Section score denominators (fraction of the role's technical-skill
	// count a section is expected to mention) and floors. Floors keep a
	// present-but-sparse section from scoring as low as an absent one.
	skillsSectionRatio      = 0.4
	skillsSectionAbsent     = 30
	projectsSectionRatio    = 0.2
	projectsSectionFloor    = 40
	projectsSectionAbsent   = 20
	experienceSectionRatio  = 0.2
	experienceSectionFloor  = 35
	experienceSectionAbsent = 15
	keywordDensityScale     = 50
	keywordDensityFloor     = 20
	formattingSectionTarget = 5
	formattingFloor         = 50
	sectionPrefixCut        = 70
	keywordPrefixCut        = 60

	// Risk bands on rejection percentage.
	riskLowMax      = 20
	riskModerateMax = 40

	// Keyword density reporting.
	densityTopKeywords  = 15
	densityMissingLimit = 6

	// Role match icon tiers and recommendation evidence threshold.
	rolePassMin            = 75
	roleCautionMin         = 50
	recommendedStrongRatio = 0.3

	// What-if simulator: per-keyword boost, boost cap, simulated ceiling.
	simulatorKeywords   = 3
	simulatorPerKeyword = 5
	simulatorBoostCap   = 20
	simulatorScoreCap   = 98

	// Comparison defaults when a role carries no benchmark.
	defaultAvgTechnical      = 75
	defaultAvgSoft           = 70
	defaultAvgProjects       = 72
	comparisonProjectsRatio  = 0.15
	comparisonProjectsFloor  = 40
	comparisonProjectsAbsent = 25
	comparisonProfileCut     = 70

	// Roadmap phase sizing and per-skill progress bands.
	roadmapPhaseSize      = 3
	roadmapStrongMentions = 3
	progressExpertMin     = 5
	progressStrongMin     = 3
	progressSomeMin       = 1
	progressExpert        = 90
	progressStrong        = 70
	progressSome          = 50
	phase1PendingFloor    = 10
	phase2PendingFloor    = 5

	// Insight bands on ATS score.
	insightStrongMin   = 80
	insightModerateMin = 60
)

func statusLabel(score int) string {
	switch {
	case score >= statusStrongMin:
		return "Strong"
	case score >= statusModerateMin:
		return "Moderate"
	case score >= statusNeedsMin:
		return "Needs Improvement"
	default:
		return "Limited"
	}
}

func statusColor(score int) string {
	switch {
	case score >= colorGreenMin:
		return "green"
	case score >= colorYellowMin:
		return "yellow"
	default:
		return "red"
	}
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
