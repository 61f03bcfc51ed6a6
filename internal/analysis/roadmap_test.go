package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contestlens/analyzer/internal/domain"
)

// bandWith builds a BandAnalysis fixture from name→frequency pairs,
// mirroring the aggregator's descending-frequency order.
func bandWith(band domain.RatingBand, total int, freqs ...any) domain.BandAnalysis {
	a := domain.BandAnalysis{Band: band, Total: total}
	for i := 0; i < len(freqs); i += 2 {
		name := freqs[i].(string)
		freq := freqs[i+1].(float64)
		a.Categories = append(a.Categories, domain.CategoryStat{
			Name:      name,
			Count:     int(freq * float64(total)),
			Frequency: freq,
		})
	}
	return a
}

var (
	bandLow  = domain.RatingBand{Lo: 800, Hi: 1000, Label: "Newbie → Pupil"}
	bandHigh = domain.RatingBand{Lo: 1000, Hi: 1200, Label: "Pupil"}
)

func TestFirstBandTopTruncatedToSix(t *testing.T) {
	first := bandWith(bandLow, 100)
	for i := 0; i < 8; i++ {
		first.Categories = append(first.Categories, domain.CategoryStat{
			Name:      fmt.Sprintf("Cat%d", i),
			Count:     50 - i,
			Frequency: 0.50 - float64(i)*0.01,
		})
	}
	// One below the candidate floor.
	first.Categories = append(first.Categories, domain.CategoryStat{
		Name: "Rare", Count: 5, Frequency: 0.05,
	})

	stages := DeriveRoadmap([]domain.BandAnalysis{first})

	require.Len(t, stages, 1)
	require.Len(t, stages[0].Top, 6)
	assert.Equal(t, "Cat0", stages[0].Top[0].Name)
	assert.Empty(t, stages[0].NewOrGrowing)
	assert.Empty(t, stages[0].Dominant)
}

func TestGrowthClauseAlone(t *testing.T) {
	// Prev 0.10 → 0.14: growth 0.04 qualifies, the emergent clause
	// does not (prev is not below 0.05).
	prev := bandWith(bandLow, 100, "X", 0.10)
	cur := bandWith(bandHigh, 100, "X", 0.14)

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	require.Len(t, stages, 2)
	require.Len(t, stages[1].NewOrGrowing, 1)
	g := stages[1].NewOrGrowing[0]
	assert.Equal(t, "X", g.Name)
	assert.InDelta(t, 0.04, g.Growth, 1e-9)
}

func TestEmergentClause(t *testing.T) {
	// Prev 0.04, cur 0.09. prev < 0.05 and
	// freq ≥ 0.08 flags the category as newly significant.
	prev := bandWith(bandLow, 100, "X", 0.04)
	cur := bandWith(bandHigh, 100, "X", 0.09)

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	require.Len(t, stages[1].NewOrGrowing, 1)
	assert.Equal(t, "X", stages[1].NewOrGrowing[0].Name)
}

func TestNeitherClause(t *testing.T) {
	// Growth 0.01 with prev above 0.05: not new, not growing.
	prev := bandWith(bandLow, 100, "X", 0.09)
	cur := bandWith(bandHigh, 100, "X", 0.10)

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	assert.Empty(t, stages[1].NewOrGrowing)
}

func TestCandidateFloorFiltersGrowth(t *testing.T) {
	// Big relative growth but still under 10% frequency at band i.
	prev := bandWith(bandLow, 100, "X", 0.01)
	cur := bandWith(bandHigh, 100, "X", 0.09)

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	assert.Empty(t, stages[1].NewOrGrowing)
}

func TestMissingPreviousCountsAsZero(t *testing.T) {
	prev := bandWith(bandLow, 100, "Other", 0.30)
	cur := bandWith(bandHigh, 100, "X", 0.12)

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	require.Len(t, stages[1].NewOrGrowing, 1)
	assert.InDelta(t, 0.12, stages[1].NewOrGrowing[0].Growth, 1e-9)
}

func TestNewOrGrowingSortedByGrowthTruncated(t *testing.T) {
	prev := bandWith(bandLow, 100)
	cur := bandWith(bandHigh, 100)
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("Cat%d", i)
		prev.Categories = append(prev.Categories, domain.CategoryStat{
			Name: name, Count: 10, Frequency: 0.10,
		})
		cur.Categories = append(cur.Categories, domain.CategoryStat{
			Name: name, Count: 15 + i, Frequency: 0.15 + float64(i)*0.01,
		})
	}

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	require.Len(t, stages[1].NewOrGrowing, 6)
	// Largest growth first.
	assert.Equal(t, "Cat7", stages[1].NewOrGrowing[0].Name)
	assert.Equal(t, "Cat2", stages[1].NewOrGrowing[5].Name)
}

func TestDominantThresholdAndTruncation(t *testing.T) {
	prev := bandWith(bandLow, 100)
	cur := bandWith(bandHigh, 100,
		"A", 0.40, "B", 0.35, "C", 0.30, "D", 0.25, "E", 0.22, "F", 0.20,
		"G", 0.19)

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	require.Len(t, stages[1].Dominant, 5)
	assert.Equal(t, "A", stages[1].Dominant[0].Name)
	assert.Equal(t, "E", stages[1].Dominant[4].Name)
	for _, d := range stages[1].Dominant {
		assert.GreaterOrEqual(t, d.Frequency, 0.20)
	}
}

func TestEmptyBandProducesEmptyStage(t *testing.T) {
	prev := bandWith(bandLow, 100, "X", 0.50)
	cur := domain.BandAnalysis{Band: bandHigh}

	stages := DeriveRoadmap([]domain.BandAnalysis{prev, cur})

	require.Len(t, stages, 2)
	assert.Empty(t, stages[1].NewOrGrowing)
	assert.Empty(t, stages[1].Dominant)
}
