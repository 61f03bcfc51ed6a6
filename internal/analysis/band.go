package analysis

import (
	"math"
	"sort"

	"contestlens/analyzer/internal/domain"
)

// MinDisplayFrequency is the global cutoff below which categories are
// suppressed from tabular views. Direct lookups are not filtered.
const MinDisplayFrequency = 0.05

// Aggregator computes per-band category and raw-tag frequency tables.
type Aggregator struct {
	normalizer *Normalizer
}

// NewAggregator creates an Aggregator using the given tag normalizer.
func NewAggregator(n *Normalizer) *Aggregator {
	return &Aggregator{normalizer: n}
}

// AnalyzeBand aggregates the rated problems falling inside the band.
//
// Category counts are deduplicated per problem: a problem whose tags
// resolve to the same category more than once still counts that
// category exactly once. Raw-tag counts are not deduplicated. Ties in
// the resulting tables are broken by name ascending so output order is
// deterministic regardless of scan order.
func (a *Aggregator) AnalyzeBand(problems []domain.Problem, band domain.RatingBand) domain.BandAnalysis {
	result := domain.BandAnalysis{Band: band}

	var inBand []domain.Problem
	for _, p := range problems {
		if p.Rated() && band.Contains(*p.Rating) {
			inBand = append(inBand, p)
		}
	}

	result.Total = len(inBand)
	if result.Total == 0 {
		return result
	}

	categoryCounts := make(map[string]int)
	rawTagCounts := make(map[string]int)

	for _, p := range inBand {
		seen := make(map[string]struct{})
		for _, tag := range p.Tags {
			rawTagCounts[tag]++

			category, ok := a.normalizer.Normalize(tag)
			if !ok {
				continue
			}
			if _, dup := seen[category]; dup {
				continue
			}
			seen[category] = struct{}{}
			categoryCounts[category]++
		}
	}

	result.Categories = make([]domain.CategoryStat, 0, len(categoryCounts))
	for name, count := range categoryCounts {
		result.Categories = append(result.Categories, domain.CategoryStat{
			Name:      name,
			Count:     count,
			Frequency: roundFrequency(count, result.Total),
		})
	}
	sort.Slice(result.Categories, func(i, j int) bool {
		if result.Categories[i].Count != result.Categories[j].Count {
			return result.Categories[i].Count > result.Categories[j].Count
		}
		return result.Categories[i].Name < result.Categories[j].Name
	})

	result.RawTags = make([]domain.TagCount, 0, len(rawTagCounts))
	for tag, count := range rawTagCounts {
		result.RawTags = append(result.RawTags, domain.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(result.RawTags, func(i, j int) bool {
		if result.RawTags[i].Count != result.RawTags[j].Count {
			return result.RawTags[i].Count > result.RawTags[j].Count
		}
		return result.RawTags[i].Tag < result.RawTags[j].Tag
	})

	return result
}

// AnalyzeAll runs AnalyzeBand over every configured band in order.
func (a *Aggregator) AnalyzeAll(problems []domain.Problem, bands []domain.RatingBand) []domain.BandAnalysis {
	analyses := make([]domain.BandAnalysis, 0, len(bands))
	for _, band := range bands {
		analyses = append(analyses, a.AnalyzeBand(problems, band))
	}
	return analyses
}

// roundFrequency rounds count/total to 4 decimal places, half away
// from zero.
func roundFrequency(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*10000) / 10000
}
