package analysis

import "contestlens/analyzer/internal/domain"

// DefaultRatingBands returns the built-in rating bands covering the
// Newbie to Expert range.
func DefaultRatingBands() []domain.RatingBand {
	return []domain.RatingBand{
		{Lo: 800, Hi: 1000, Label: "Newbie → Pupil"},
		{Lo: 1000, Hi: 1200, Label: "Pupil"},
		{Lo: 1200, Hi: 1400, Label: "Pupil → Specialist"},
		{Lo: 1400, Hi: 1600, Label: "Specialist → Expert"},
		{Lo: 1600, Hi: 1900, Label: "Expert"},
	}
}
