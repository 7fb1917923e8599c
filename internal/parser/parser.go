package parser

import (
	"sort"

	"skillgap-backend/internal/skills"
)

// Profile is the fully parsed, immutable representation of one resume
// against one target role. Skill slices are sorted; FoundSkills and
// MissingSkills partition the role universe with no overlap.
type Profile struct {
	RawText          string            `json:"-"`
	FoundSkills      []string          `json:"foundSkills"`
	MissingSkills    []string          `json:"missingSkills"`
	FoundTechnical   []string          `json:"foundTechnical"`
	FoundSoft        []string          `json:"foundSoft"`
	MissingTechnical []string          `json:"missingTechnical"`
	MissingSoft      []string          `json:"missingSoft"`
	KeywordCounts    map[string]int    `json:"keywordCounts"`
	Sections         map[string]string `json:"-"`
	ExperienceLevel  string            `json:"experienceLevel"`
	JobRole          string            `json:"jobRole"`
}

// SectionNames lists the detected section categories in fixed order.
func (p Profile) SectionNames() []string {
	var out []string
	for _, category := range sectionOrder {
		if _, ok := p.Sections[category]; ok {
			out = append(out, category)
		}
	}
	return out
}

// Parser assembles profiles from raw document text.
type Parser struct {
	dict     *skills.Dictionary
	detector *Detector
}

// New builds a Parser over the dictionary.
func New(dict *skills.Dictionary) *Parser {
	return &Parser{dict: dict, detector: NewDetector(dict)}
}

// Parse runs the full parsing pipeline: skill detection on normalized text,
// section segmentation and experience classification on the raw lines, and
// partitioning of the found/missing sets by skill category. It is a total
// function: empty text and unknown roles produce empty sets, not errors.
func (p *Parser) Parse(text, jobRole string) Profile {
	det := p.detector.Detect(text, jobRole)
	role, _ := p.dict.Role(jobRole)

	tech := toSet(role.TechnicalSkills)
	soft := toSet(role.SoftSkills)
	found := toSet(det.Found)

	return Profile{
		RawText:          text,
		FoundSkills:      det.Found,
		MissingSkills:    det.Missing,
		FoundTechnical:   sortedIntersect(found, tech),
		FoundSoft:        sortedIntersect(found, soft),
		MissingTechnical: sortedSubtract(tech, found),
		MissingSoft:      sortedSubtract(soft, found),
		KeywordCounts:    det.Counts,
		Sections:         DetectSections(text),
		ExperienceLevel:  DetectExperienceLevel(text),
		JobRole:          jobRole,
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func sortedIntersect(a, b map[string]struct{}) []string {
	var out []string
	for s := range a {
		if _, ok := b[s]; ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func sortedSubtract(a, b map[string]struct{}) []string {
	var out []string
	for s := range a {
		if _, ok := b[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
