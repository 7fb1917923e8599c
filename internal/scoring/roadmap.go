package scoring

import (
	"sort"

	"skillgap-backend/internal/parser"
)

// RoadmapItem is one skill inside a roadmap phase.
type RoadmapItem struct {
	Skill    string `json:"skill"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// RoadmapPhase groups roadmap items into a 30-day window.
type RoadmapPhase struct {
	Title           string        `json:"title"`
	Subtitle        string        `json:"subtitle"`
	Items           []RoadmapItem `json:"items"`
	OverallProgress int           `json:"overallProgress"`
}

// Roadmap is a three-phase 90-day learning plan built from missing skills.
type Roadmap struct {
	Phase1 RoadmapPhase `json:"phase1"`
	Phase2 RoadmapPhase `json:"phase2"`
	Phase3 RoadmapPhase `json:"phase3"`
}

// BuildRoadmap orders the missing technical skills by how close the resume
// already is to covering them (mention counts ascending keeps near-misses in
// the earliest phase) and slices them into three phases of three.
func BuildRoadmap(p parser.Profile) Roadmap {
	missing := append([]string(nil), p.MissingTechnical...)
	sort.SliceStable(missing, func(i, j int) bool {
		return p.KeywordCounts[missing[i]] < p.KeywordCounts[missing[j]]
	})

	phase1Missing := window(missing, 0, roadmapPhaseSize)
	phase2Missing := window(missing, roadmapPhaseSize, 2*roadmapPhaseSize)
	phase3Missing := window(missing, 2*roadmapPhaseSize, 3*roadmapPhaseSize)

	var phase1 []RoadmapItem
	for _, skill := range p.FoundSkills {
		if p.KeywordCounts[skill] >= roadmapStrongMentions && contains(p.FoundTechnical, skill) {
			phase1 = append(phase1, RoadmapItem{Skill: skill, Status: "done", Progress: skillProgress(p.KeywordCounts[skill])})
		}
		if len(phase1) == 2 {
			break
		}
	}
	for _, skill := range firstN(phase1Missing, 2) {
		phase1 = append(phase1, RoadmapItem{
			Skill:    skill,
			Status:   "pending",
			Progress: max(skillProgress(p.KeywordCounts[skill]), phase1PendingFloor),
		})
	}

	var phase2 []RoadmapItem
	for _, skill := range firstN(phase2Missing, 3) {
		phase2 = append(phase2, RoadmapItem{
			Skill:    skill,
			Status:   "pending",
			Progress: max(skillProgress(p.KeywordCounts[skill]), phase2PendingFloor),
		})
	}
	if len(phase2) == 0 {
		for _, skill := range firstN(p.MissingSoft, 2) {
			phase2 = append(phase2, RoadmapItem{Skill: skill, Status: "pending", Progress: 10})
		}
	}

	var phase3 []RoadmapItem
	for _, skill := range firstN(phase3Missing, 3) {
		phase3 = append(phase3, RoadmapItem{Skill: skill, Status: "pending", Progress: 0})
	}
	if len(phase3) == 0 {
		phase3 = []RoadmapItem{
			{Skill: "Build Portfolio Project", Status: "pending", Progress: 0},
			{Skill: "Get Certified", Status: "pending", Progress: 0},
		}
	}

	return Roadmap{
		Phase1: phase("30 Days", "Core Skills", phase1),
		Phase2: phase("31–60 Days", "Intermediate", phase2),
		Phase3: phase("61–90 Days", "Advanced", phase3),
	}
}

func phase(title, subtitle string, items []RoadmapItem) RoadmapPhase {
	return RoadmapPhase{Title: title, Subtitle: subtitle, Items: items, OverallProgress: overallProgress(items)}
}

// skillProgress bands a raw mention count into a coarse progress percentage.
func skillProgress(count int) int {
	switch {
	case count >= progressExpertMin:
		return progressExpert
	case count >= progressStrongMin:
		return progressStrong
	case count >= progressSomeMin:
		return progressSome
	default:
		return 0
	}
}

func overallProgress(items []RoadmapItem) int {
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, item := range items {
		total += item.Progress
	}
	return total / len(items)
}

func window(items []string, lo, hi int) []string {
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}
	return items[lo:hi]
}
