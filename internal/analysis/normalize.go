package analysis

// TagMapping maps a raw Codeforces tag onto a technique category. An
// empty Category marks the tag as dropped from category analysis.
type TagMapping struct {
	Tag      string `json:"tag" mapstructure:"tag"`
	Category string `json:"category" mapstructure:"category"`
}

// Normalizer resolves raw tags to canonical category names. Matching is
// verbatim: no case folding, trimming or fuzzy lookup, since the table
// keys mirror the upstream API vocabulary exactly.
type Normalizer struct {
	categories map[string]string
	dropped    map[string]struct{}
}

// NewNormalizer builds a Normalizer from an ordered mapping table.
func NewNormalizer(mappings []TagMapping) *Normalizer {
	n := &Normalizer{
		categories: make(map[string]string, len(mappings)),
		dropped:    make(map[string]struct{}),
	}
	for _, m := range mappings {
		if m.Category == "" {
			n.dropped[m.Tag] = struct{}{}
			continue
		}
		n.categories[m.Tag] = m.Category
	}
	return n
}

// Normalize returns the category for a raw tag. Unmapped tags fall back
// to the raw tag itself; sentinel tags return ok == false and carry no
// category.
func (n *Normalizer) Normalize(raw string) (category string, ok bool) {
	if _, drop := n.dropped[raw]; drop {
		return "", false
	}
	if cat, found := n.categories[raw]; found {
		return cat, true
	}
	return raw, true
}

// DefaultTagMappings returns the built-in tag table covering the known
// Codeforces tag vocabulary. "*special" is the drop sentinel.
func DefaultTagMappings() []TagMapping {
	return []TagMapping{
		{Tag: "implementation", Category: "Implementation"},
		{Tag: "brute force", Category: "Brute Force"},
		{Tag: "greedy", Category: "Greedy"},
		{Tag: "sortings", Category: "Sorting"},
		{Tag: "math", Category: "Math"},
		{Tag: "number theory", Category: "Number Theory"},
		{Tag: "combinatorics", Category: "Combinatorics"},
		{Tag: "geometry", Category: "Geometry"},
		{Tag: "dp", Category: "Dynamic Programming"},
		{Tag: "binary search", Category: "Binary Search"},
		{Tag: "two pointers", Category: "Two Pointers"},
		{Tag: "data structures", Category: "Data Structures"},
		{Tag: "strings", Category: "Strings"},
		{Tag: "string suffix structures", Category: "Strings (Advanced)"},
		{Tag: "hashing", Category: "Hashing"},
		{Tag: "graphs", Category: "Graphs"},
		{Tag: "dfs and similar", Category: "DFS / BFS"},
		{Tag: "shortest paths", Category: "Shortest Paths"},
		{Tag: "trees", Category: "Trees"},
		{Tag: "constructive algorithms", Category: "Constructive Algorithms"},
		{Tag: "bitmasks", Category: "Bit Manipulation"},
		{Tag: "divide and conquer", Category: "Divide & Conquer"},
		{Tag: "games", Category: "Game Theory"},
		{Tag: "flows", Category: "Flows & Matching"},
		{Tag: "graph matchings", Category: "Flows & Matching"},
		{Tag: "interactive", Category: "Interactive"},
		{Tag: "probabilities", Category: "Probability"},
		{Tag: "matrices", Category: "Matrices"},
		{Tag: "fft", Category: "FFT"},
		{Tag: "ternary search", Category: "Ternary Search"},
		{Tag: "expression parsing", Category: "Expression Parsing"},
		{Tag: "meet-in-the-middle", Category: "Meet in the Middle"},
		{Tag: "2-sat", Category: "2-SAT"},
		{Tag: "chinese remainder theorem", Category: "Chinese Remainder Theorem"},
		{Tag: "schedules", Category: "Scheduling"},
		{Tag: "*special", Category: ""},
	}
}
