// Package skills holds the static reference data the analyzer matches
// against: per-role skill requirements, ATS keyword lists, industry-average
// benchmarks, the alias table, and the course catalog. The data is read-only
// after construction and shared freely across requests.
package skills

import "sort"

// Benchmark is the industry-average triple a resume is compared against.
type Benchmark struct {
	Technical int `json:"technical"`
	Soft      int `json:"soft"`
	Projects  int `json:"projects"`
}

// JobPosting is a sample posting shown alongside a recommended role.
type JobPosting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Posted   string `json:"posted"`
}

// Role describes one target job role.
type Role struct {
	Name            string
	TechnicalSkills []string
	SoftSkills      []string
	ATSKeywords     []string
	IndustryAvg     Benchmark
	Description     string
	SampleJobs      []JobPosting
}

// Course is one catalog entry keyed by the skill it teaches.
type Course struct {
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
}

// Dictionary bundles all reference data. RoleOrder preserves declaration
// order so role ranking ties stay deterministic.
type Dictionary struct {
	RoleOrder []string
	Roles     map[string]Role
	Aliases   map[string]string
	Catalog   map[string]Course
}

// Default returns the built-in dictionary. Loaded once per process.
func Default() *Dictionary {
	roles := make(map[string]Role, len(roleData))
	order := make([]string, 0, len(roleData))
	for _, r := range roleData {
		roles[r.Name] = r
		order = append(order, r.Name)
	}
	return &Dictionary{
		RoleOrder: order,
		Roles:     roles,
		Aliases:   skillAliases,
		Catalog:   courseCatalog,
	}
}

// Role returns the role for the given key. Unknown keys yield a zero Role,
// which degrades to empty-universe detection and scoring, never an error.
func (d *Dictionary) Role(name string) (Role, bool) {
	r, ok := d.Roles[name]
	return r, ok
}

// AliasesFor returns every alias whose canonical mapping equals the skill.
func (d *Dictionary) AliasesFor(canonical string) []string {
	var out []string
	for _, alias := range sortedKeys(d.Aliases) {
		if d.Aliases[alias] == canonical {
			out = append(out, alias)
		}
	}
	return out
}

// Universe is the detection search space for a role: technical ∪ soft ∪ ATS.
func (r Role) Universe() []string {
	seen := make(map[string]struct{}, len(r.TechnicalSkills)+len(r.SoftSkills)+len(r.ATSKeywords))
	var out []string
	for _, group := range [][]string{r.TechnicalSkills, r.SoftSkills, r.ATSKeywords} {
		for _, s := range group {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
