package parser

import (
	"regexp"
	"strings"
)

// sectionLookahead caps how many lines a section may claim past its heading.
const sectionLookahead = 19

// sectionOrder fixes the category scan order; segmentation of one category
// never consults another's capture, so overlapping blocks are possible and
// accepted.
var sectionOrder = []string{"Skills", "Experience", "Projects", "Education", "Certifications", "Summary"}

var sectionPatterns = map[string]*regexp.Regexp{
	"Skills":         regexp.MustCompile(`(?i)\b(skills|technical skills|core competencies|technologies|tech stack)\b`),
	"Experience":     regexp.MustCompile(`(?i)\b(experience|work experience|employment|professional experience|work history)\b`),
	"Projects":       regexp.MustCompile(`(?i)\b(projects|personal projects|academic projects|project experience)\b`),
	"Education":      regexp.MustCompile(`(?i)\b(education|academic|qualification|degree|university|college)\b`),
	"Certifications": regexp.MustCompile(`(?i)\b(certifications?|certificates?|licensed?|accreditation)\b`),
	"Summary":        regexp.MustCompile(`(?i)\b(summary|objective|about|profile|professional summary)\b`),
}

// DetectSections locates the first heading line for each known category and
// captures the following block up to the next heading of any category or the
// lookahead cap. Categories with no heading are absent from the result.
func DetectSections(text string) map[string]string {
	lines := strings.Split(text, "\n")
	found := make(map[string]string)

	for _, category := range sectionOrder {
		heading := sectionPatterns[category]
		for i, line := range lines {
			if !heading.MatchString(line) {
				continue
			}
			var content []string
			for j := i + 1; j < len(lines) && j <= i+sectionLookahead; j++ {
				if isAnyHeading(lines[j]) {
					break
				}
				content = append(content, lines[j])
			}
			found[category] = strings.TrimSpace(strings.Join(content, "\n"))
			break
		}
	}
	return found
}

func isAnyHeading(line string) bool {
	for _, category := range sectionOrder {
		if sectionPatterns[category].MatchString(line) {
			return true
		}
	}
	return false
}
