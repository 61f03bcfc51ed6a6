package domain

import "fmt"

// Problem is a single Codeforces problem as stored in the database.
// Rating is nil for problems that have not been rated yet; only rated
// problems take part in band analysis.
type Problem struct {
	ContestID   int      `json:"contest_id"`
	Index       string   `json:"index"`
	Name        string   `json:"name"`
	Rating      *int     `json:"rating,omitempty"`
	Tags        []string `json:"tags"`
	SolvedCount int      `json:"solved_count"`
}

// ID returns the canonical problem identifier, e.g. "1850A".
func (p Problem) ID() string {
	return fmt.Sprintf("%d%s", p.ContestID, p.Index)
}

// Rated reports whether the problem has a rating.
func (p Problem) Rated() bool {
	return p.Rating != nil
}
