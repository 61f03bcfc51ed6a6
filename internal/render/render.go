package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"contestlens/analyzer/internal/analysis"
	"contestlens/analyzer/internal/domain"
	"contestlens/analyzer/internal/repository"
)

// Renderer prints analysis results to a terminal. It is purely
// presentational; all numbers come from the analysis core untouched.
type Renderer struct {
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Rank colors follow the Codeforces palette for each band label.
var rankColors = map[string]*color.Color{
	"Newbie → Pupil":      color.New(color.FgHiBlack),
	"Pupil":               color.New(color.FgGreen),
	"Pupil → Specialist":  color.New(color.FgHiCyan),
	"Specialist → Expert": color.New(color.FgBlue),
	"Expert":              color.New(color.FgBlue),
}

var stageNames = []string{"Foundation", "Core Skills", "Intermediate", "Advanced", "Expert"}

func rankColor(label string) *color.Color {
	if c, ok := rankColors[label]; ok {
		return c
	}
	return color.New(color.FgWhite)
}

// Band prints the frequency table for one band, cut off at the global
// display threshold.
func (r *Renderer) Band(a domain.BandAnalysis) {
	c := rankColor(a.Band.Label)
	c.Fprintf(r.out, "\n%s\n", strings.Repeat("═", 70))
	c.Fprintf(r.out, "  Rating %d-%d  ·  %s\n", a.Band.Lo, a.Band.Hi, a.Band.Label)
	c.Fprintf(r.out, "%s\n", strings.Repeat("═", 70))
	fmt.Fprintf(r.out, "  Total rated problems: %d\n\n", a.Total)

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Technique", "Freq", "Bar", "#Prob"})
	for _, cat := range a.VisibleCategories(analysis.MinDisplayFrequency) {
		table.Append([]string{
			cat.Name,
			fmt.Sprintf("%.1f%%", cat.Frequency*100),
			bar(cat.Frequency, 30),
			fmt.Sprintf("%d", cat.Count),
		})
	}
	table.Render()
}

// keyCategories are the techniques tracked in the progression matrix.
var keyCategories = []string{
	"Implementation", "Greedy", "Math", "Binary Search",
	"Dynamic Programming", "Graphs", "DFS / BFS", "Trees",
	"Data Structures", "Constructive Algorithms", "Sorting",
	"Two Pointers", "Number Theory", "Combinatorics",
	"Strings", "Brute Force", "Bit Manipulation",
}

// Progression prints technique frequency across all bands.
func (r *Renderer) Progression(analyses []domain.BandAnalysis) {
	bold := color.New(color.Bold)
	bold.Fprintf(r.out, "\n%s\n", strings.Repeat("━", 70))
	bold.Fprintln(r.out, "  TECHNIQUE PROGRESSION ACROSS RATINGS")
	bold.Fprintf(r.out, "%s\n", strings.Repeat("━", 70))

	table := tablewriter.NewWriter(r.out)
	header := []string{"Technique"}
	for _, a := range analyses {
		header = append(header, a.Band.Key())
	}
	table.SetHeader(header)

	for _, cat := range keyCategories {
		row := []string{cat}
		for _, a := range analyses {
			stat, ok := a.Category(cat)
			if !ok || stat.Frequency < 0.01 {
				row = append(row, "—")
			} else {
				row = append(row, fmt.Sprintf("%.1f%%", stat.Frequency*100))
			}
		}
		table.Append(row)
	}
	table.Render()
}

// Roadmap prints the staged difficulty progression.
func (r *Renderer) Roadmap(stages []domain.RoadmapStage) {
	bold := color.New(color.Bold)
	bold.Fprintf(r.out, "\n%s\n", strings.Repeat("━", 70))
	bold.Fprintln(r.out, "  DATA-DRIVEN ROADMAP")
	bold.Fprintf(r.out, "%s\n", strings.Repeat("━", 70))

	green := color.New(color.FgGreen)
	for i, stage := range stages {
		name := fmt.Sprintf("Stage %d", i+1)
		if i < len(stageNames) {
			name = stageNames[i]
		}

		c := rankColor(stage.Band.Label)
		fmt.Fprintln(r.out)
		c.Fprintf(r.out, "  %d-%d — %s", stage.Band.Lo, stage.Band.Hi, name)
		fmt.Fprintf(r.out, " (%s)\n", stage.Band.Label)

		for _, cat := range stage.Top {
			fmt.Fprintf(r.out, "     ├─ %s (%.0f%% of problems)\n", cat.Name, cat.Frequency*100)
		}

		if len(stage.NewOrGrowing) > 0 {
			fmt.Fprintln(r.out, "     New / Growing at this level:")
			for _, g := range stage.NewOrGrowing {
				fmt.Fprintf(r.out, "     ├─ %s (%.0f%%) ", g.Name, g.Frequency*100)
				green.Fprintf(r.out, "↑%.0f%%\n", g.Growth*100)
			}
		}
		if len(stage.Dominant) > 0 {
			fmt.Fprintln(r.out, "     Dominant:")
			for _, cat := range stage.Dominant {
				fmt.Fprintf(r.out, "     ├─ %s (%.0f%%)\n", cat.Name, cat.Frequency*100)
			}
		}

		if i < len(stages)-1 {
			fmt.Fprintln(r.out, "     │")
			fmt.Fprintln(r.out, "     ▼")
		}
	}
	fmt.Fprintln(r.out)
}

// Summary prints database totals, the rating distribution and the most
// frequent raw tags.
func (r *Renderer) Summary(sum *repository.Summary, dist []repository.BandCount, topTags []domain.TagCount) {
	bold := color.New(color.Bold)
	bold.Fprintf(r.out, "\n%s\n", strings.Repeat("═", 60))
	bold.Fprintln(r.out, "  DATABASE SUMMARY")
	bold.Fprintf(r.out, "%s\n", strings.Repeat("═", 60))
	fmt.Fprintf(r.out, "  Total problems:   %d\n", sum.Total)
	fmt.Fprintf(r.out, "  Rated problems:   %d\n", sum.Rated)
	fmt.Fprintf(r.out, "  Unrated problems: %d\n\n", sum.Unrated)

	maxCount := 1
	for _, bc := range dist {
		if bc.Count > maxCount {
			maxCount = bc.Count
		}
	}

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Rating Band", "Count", "Bar"})
	for _, bc := range dist {
		table.Append([]string{
			bc.Band.Key(),
			fmt.Sprintf("%d", bc.Count),
			bar(float64(bc.Count)/float64(maxCount), 30),
		})
	}
	table.Render()

	color.New(color.FgYellow).Fprintln(r.out, "\n  Top Tags")
	tags := tablewriter.NewWriter(r.out)
	tags.SetHeader([]string{"Tag", "Count"})
	for _, t := range topTags {
		tags.Append([]string{t.Tag, fmt.Sprintf("%d", t.Count)})
	}
	tags.Render()
}

func bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
