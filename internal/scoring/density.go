package scoring

import (
	"sort"

	"skillgap-backend/internal/parser"
	"skillgap-backend/internal/skills"
)

// KeywordDensity reports how often one ATS keyword occurs in the document.
type KeywordDensity struct {
	Keyword  string `json:"keyword"`
	Count    int    `json:"count"`
	Status   string `json:"status"`
	Color    string `json:"color"`
	BarClass string `json:"barClass"`
}

// ComputeKeywordDensity builds the density table for the role's top ATS
// keywords (dictionary order) and the shortlist of missing ones. The table
// is sorted with zero-count keywords last, alphabetically within each group;
// the shortlist is capped and is always a subset of the role's keywords with
// zero occurrences.
func ComputeKeywordDensity(p parser.Profile, dict *skills.Dictionary) ([]KeywordDensity, []string) {
	role, _ := dict.Role(p.JobRole)

	keywords := role.ATSKeywords
	if len(keywords) > densityTopKeywords {
		keywords = keywords[:densityTopKeywords]
	}

	results := make([]KeywordDensity, 0, len(keywords))
	for _, kw := range keywords {
		count := p.KeywordCounts[kw]
		item := KeywordDensity{Keyword: kw, Count: count, Status: "Good", Color: "green", BarClass: "good"}
		if count == 0 {
			item.Status = "Missing"
			item.Color = "red"
			item.BarClass = "bad"
		}
		results = append(results, item)
	}

	sort.SliceStable(results, func(i, j int) bool {
		iZero, jZero := results[i].Count == 0, results[j].Count == 0
		if iZero != jZero {
			return !iZero
		}
		return results[i].Keyword < results[j].Keyword
	})

	missing := make([]string, 0, densityMissingLimit)
	for _, r := range results {
		if r.Count == 0 && len(missing) < densityMissingLimit {
			missing = append(missing, r.Keyword)
		}
	}
	return results, missing
}
