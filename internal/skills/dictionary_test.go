package skills

import (
	"sort"
	"strings"
	"testing"
)

func TestDefaultRoleOrderMatchesRoles(t *testing.T) {
	dict := Default()
	if len(dict.RoleOrder) != len(dict.Roles) {
		t.Fatalf("RoleOrder has %d entries, Roles has %d", len(dict.RoleOrder), len(dict.Roles))
	}
	for _, name := range dict.RoleOrder {
		role, ok := dict.Role(name)
		if !ok {
			t.Fatalf("RoleOrder names unknown role %q", name)
		}
		if role.Name != name {
			t.Fatalf("role keyed %q carries name %q", name, role.Name)
		}
	}
}

func TestRoleDataComplete(t *testing.T) {
	dict := Default()
	for _, name := range dict.RoleOrder {
		role, _ := dict.Role(name)
		if len(role.TechnicalSkills) == 0 {
			t.Fatalf("%s: no technical skills", name)
		}
		if len(role.SoftSkills) == 0 {
			t.Fatalf("%s: no soft skills", name)
		}
		if len(role.ATSKeywords) == 0 {
			t.Fatalf("%s: no ranking keywords", name)
		}
		if role.Description == "" {
			t.Fatalf("%s: missing description", name)
		}
		if len(role.SampleJobs) == 0 {
			t.Fatalf("%s: no sample jobs", name)
		}
		for _, v := range []int{role.IndustryAvg.Technical, role.IndustryAvg.Soft, role.IndustryAvg.Projects} {
			if v < 0 || v > 100 {
				t.Fatalf("%s: benchmark value %d out of range", name, v)
			}
		}
	}
}

func TestUniverseDeduplicates(t *testing.T) {
	dict := Default()
	for _, name := range dict.RoleOrder {
		role, _ := dict.Role(name)
		universe := role.Universe()
		seen := map[string]bool{}
		for _, s := range universe {
			if seen[s] {
				t.Fatalf("%s: duplicate %q in universe", name, s)
			}
			seen[s] = true
		}
		// Ranking keywords must be detectable, or gaps could never close.
		for _, kw := range role.ATSKeywords {
			if !seen[kw] {
				t.Fatalf("%s: ranking keyword %q not in universe", name, kw)
			}
		}
	}
}

func TestAliasesPointAtKnownSkills(t *testing.T) {
	dict := Default()
	known := map[string]bool{}
	for _, name := range dict.RoleOrder {
		role, _ := dict.Role(name)
		for _, s := range role.Universe() {
			known[s] = true
		}
	}
	// "Artificial Intelligence" is aliased but no role lists it; it is inert
	// alias data carried in the dictionary.
	known["Artificial Intelligence"] = true

	for alias, canonical := range dict.Aliases {
		if alias == "" || canonical == "" {
			t.Fatalf("empty alias entry %q -> %q", alias, canonical)
		}
		if alias != strings.ToLower(alias) {
			t.Fatalf("alias %q is not lowercase", alias)
		}
		if !known[canonical] {
			t.Fatalf("alias %q maps to %q, which no role uses", alias, canonical)
		}
	}
}

func TestAliasesForSorted(t *testing.T) {
	dict := Default()
	aliases := dict.AliasesFor("Machine Learning")
	if len(aliases) == 0 {
		t.Fatalf("expected aliases for Machine Learning")
	}
	if !sort.StringsAreSorted(aliases) {
		t.Fatalf("aliases not sorted: %v", aliases)
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	dict := Default()
	for skill, course := range dict.Catalog {
		if course.Title == "" || course.Platform == "" || course.URL == "" {
			t.Fatalf("catalog entry for %q incomplete: %+v", skill, course)
		}
	}
}

func TestUnknownRoleYieldsZeroValue(t *testing.T) {
	dict := Default()
	role, ok := dict.Role("Astronaut")
	if ok {
		t.Fatalf("expected unknown role to report !ok")
	}
	if len(role.Universe()) != 0 {
		t.Fatalf("expected empty universe for unknown role")
	}
}
