package domain

// CategoryStat holds the per-band statistics for one technique category.
// Count is the number of distinct problems in the band touching the
// category; Frequency is Count/Total rounded to 4 decimal places.
type CategoryStat struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// TagCount holds the raw-tag occurrence count for one band. Unlike
// category counts, raw tags are counted once per occurrence with no
// per-problem deduplication.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// BandAnalysis is the aggregation result for a single rating band.
// Categories and RawTags are sorted by descending count, ties broken by
// name ascending. A band with Total == 0 has empty tables.
type BandAnalysis struct {
	Band       RatingBand     `json:"band"`
	Total      int            `json:"total"`
	Categories []CategoryStat `json:"categories"`
	RawTags    []TagCount     `json:"raw_tags,omitempty"`
}

// Category looks up a category stat by name regardless of any display
// threshold.
func (a *BandAnalysis) Category(name string) (CategoryStat, bool) {
	for _, c := range a.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryStat{}, false
}

// VisibleCategories returns the categories at or above the given
// frequency threshold, preserving order.
func (a *BandAnalysis) VisibleCategories(minFrequency float64) []CategoryStat {
	var out []CategoryStat
	for _, c := range a.Categories {
		if c.Frequency >= minFrequency {
			out = append(out, c)
		}
	}
	return out
}

// GrowthStat is a category flagged as new or growing at a band, with
// the frequency delta against the previous band.
type GrowthStat struct {
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"`
	Growth    float64 `json:"growth"`
}

// RoadmapStage is the derived roadmap entry for one band. The first
// band carries only Top; later bands carry NewOrGrowing and Dominant.
type RoadmapStage struct {
	Band         RatingBand     `json:"band"`
	Top          []CategoryStat `json:"top,omitempty"`
	NewOrGrowing []GrowthStat   `json:"new_or_growing,omitempty"`
	Dominant     []CategoryStat `json:"dominant,omitempty"`
}

// Report bundles the full analysis output for one run: the per-band
// aggregations in band order plus the derived roadmap.
type Report struct {
	Bands   []BandAnalysis `json:"bands"`
	Roadmap []RoadmapStage `json:"roadmap"`
}
