package domain

import "fmt"

// RatingBand is a half-open rating interval [Lo, Hi) with a display label.
// Bands are fixed configuration data, ascending and non-overlapping.
type RatingBand struct {
	Lo    int    `json:"lo" mapstructure:"lo"`
	Hi    int    `json:"hi" mapstructure:"hi"`
	Label string `json:"label" mapstructure:"label"`
}

// Key returns the band identifier used in exports, e.g. "800-1000".
func (b RatingBand) Key() string {
	return fmt.Sprintf("%d-%d", b.Lo, b.Hi)
}

// Contains reports whether a rating falls inside the band.
func (b RatingBand) Contains(rating int) bool {
	return rating >= b.Lo && rating < b.Hi
}
