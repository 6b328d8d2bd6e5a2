package scoring

import (
	"fmt"
	"slices"
)

// StatCategory is one stat contested in a category league.
type StatCategory struct {
	Abbrev      string
	Name        string
	LowerIsBest bool
}

var categoryLeague = [...]StatCategory{
	{Abbrev: "FG%", Name: "Field Goal Percentage"},
	{Abbrev: "FT%", Name: "Free Throw Percentage"},
	{Abbrev: "3PTM", Name: "3-pointers Made"},
	{Abbrev: "PTS", Name: "Points Scored"},
	{Abbrev: "REB", Name: "Total Rebounds"},
	{Abbrev: "AST", Name: "Assists"},
	{Abbrev: "ST", Name: "Steals"},
	{Abbrev: "BLK", Name: "Blocked Shots"},
	{Abbrev: "TO", Name: "Turnovers", LowerIsBest: true},
}

// CategoryStats returns the category league stats in declaration order.
func CategoryStats() []StatCategory {
	return slices.Clone(categoryLeague[:])
}

// CategoryResult is the outcome of a category matchup from the home side.
type CategoryResult struct {
	Wins   int
	Losses int
	Ties   int
	// Winners holds, per category, 1 for home, -1 for away, 0 for a tie.
	Winners []int
}

// Record formats the result as W-L-T.
func (r CategoryResult) Record() string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
}

// CompareCategories decides each category between two stat lines given in
// CategoryStats order.
func CompareCategories(home, away []float64) (CategoryResult, error) {
	if len(home) != len(categoryLeague) || len(away) != len(categoryLeague) {
		return CategoryResult{}, fmt.Errorf("%w: got %d and %d values, want %d",
			ErrShapeMismatch, len(home), len(away), len(categoryLeague))
	}
	res := CategoryResult{Winners: make([]int, len(categoryLeague))}
	for i, c := range categoryLeague {
		h, a := home[i], away[i]
		if c.LowerIsBest {
			h, a = -h, -a
		}
		switch {
		case h > a:
			res.Wins++
			res.Winners[i] = 1
		case h < a:
			res.Losses++
			res.Winners[i] = -1
		default:
			res.Ties++
		}
	}
	return res, nil
}
