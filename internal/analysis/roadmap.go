package analysis

import (
	"sort"

	"contestlens/analyzer/internal/domain"
)

// Roadmap thresholds. A category enters a stage's candidate set at 10%
// frequency; it is "new or growing" when its frequency gained at least
// 3 points over the previous band, or when it jumped from under 5% to
// at least 8%. Categories at 20% or more are dominant for the band.
const (
	roadmapCandidateFloor = 0.10
	growthDelta           = 0.03
	emergentPrevCeiling   = 0.05
	emergentFloor         = 0.08
	dominantFloor         = 0.20

	maxStageEntries    = 6
	maxDominantEntries = 5
)

// DeriveRoadmap derives the per-band progression roadmap from an
// ordered list of band analyses. The first band's stage lists its top
// candidate categories; every later stage lists the categories newly
// significant or growing relative to the band before it, plus the
// band's dominant categories.
func DeriveRoadmap(analyses []domain.BandAnalysis) []domain.RoadmapStage {
	stages := make([]domain.RoadmapStage, 0, len(analyses))

	for i, a := range analyses {
		stage := domain.RoadmapStage{Band: a.Band}

		candidates := a.VisibleCategories(roadmapCandidateFloor)

		if i == 0 {
			if len(candidates) > maxStageEntries {
				candidates = candidates[:maxStageEntries]
			}
			stage.Top = candidates
			stages = append(stages, stage)
			continue
		}

		prev := analyses[i-1]
		var growing []domain.GrowthStat
		for _, c := range candidates {
			prevFreq := 0.0
			if pc, ok := prev.Category(c.Name); ok {
				prevFreq = pc.Frequency
			}
			growth := c.Frequency - prevFreq
			if growth >= growthDelta || (prevFreq < emergentPrevCeiling && c.Frequency >= emergentFloor) {
				growing = append(growing, domain.GrowthStat{
					Name:      c.Name,
					Frequency: c.Frequency,
					Growth:    growth,
				})
			}
		}
		sort.SliceStable(growing, func(x, y int) bool {
			return growing[x].Growth > growing[y].Growth
		})
		if len(growing) > maxStageEntries {
			growing = growing[:maxStageEntries]
		}
		stage.NewOrGrowing = growing

		// Dominant list keeps the aggregator's descending-frequency order.
		var dominant []domain.CategoryStat
		for _, c := range candidates {
			if c.Frequency >= dominantFloor {
				dominant = append(dominant, c)
			}
		}
		if len(dominant) > maxDominantEntries {
			dominant = dominant[:maxDominantEntries]
		}
		stage.Dominant = dominant

		stages = append(stages, stage)
	}

	return stages
}
