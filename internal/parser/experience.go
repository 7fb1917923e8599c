package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Experience level labels, ordered from least to most senior.
const (
	LevelFresher = "Fresher"
	LevelJunior  = "Junior (1-2 years)"
	LevelMid     = "Mid (3-5 years)"
	LevelSenior  = "Senior (5+ years)"
)

const (
	juniorMaxYears = 2
	midMaxYears    = 5
)

// yearPatterns capture an integer adjacent to a years/experience phrase, in
// either order.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp)\s*(?:of)?\s*(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:in|of|working)`),
}

var entryLevelCues = []string{
	"fresher", "fresh graduate", "entry level", "entry-level",
	"intern", "internship", "recent graduate",
}

// DetectExperienceLevel buckets the candidate into one of four tiers based on
// the largest year count mentioned anywhere in the text. With no year count
// the result is Fresher; entry-level cues land in the same bucket, so the
// year check alone decides it.
func DetectExperienceLevel(text string) string {
	maxYears := maxYearCount(strings.ToLower(text))
	switch {
	case maxYears == 0:
		return LevelFresher
	case maxYears <= juniorMaxYears:
		return LevelJunior
	case maxYears <= midMaxYears:
		return LevelMid
	default:
		return LevelSenior
	}
}

// HasEntryLevelCue reports whether the text contains entry-level language
// such as "fresher" or "internship".
func HasEntryLevelCue(text string) bool {
	lowered := strings.ToLower(text)
	for _, cue := range entryLevelCues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

func maxYearCount(lowered string) int {
	maxYears := 0
	for _, re := range yearPatterns {
		for _, match := range re.FindAllStringSubmatch(lowered, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}
