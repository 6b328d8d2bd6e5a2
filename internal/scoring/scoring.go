// Package scoring reduces per-category fantasy stat lines to comparable
// results for head-to-head points leagues and category leagues.
package scoring

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrShapeMismatch     = errors.New("category count does not match weight table")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDuplicateCategory = errors.New("category given more than once")
)

// Category is one weighted stat in a head-to-head points league.
type Category struct {
	Name   string
	Weight float64
}

// headToHead is positional: callers of Score pass values in this order.
var headToHead = [...]Category{
	{Name: "points", Weight: 1.0},
	{Name: "rebounds", Weight: 1.2},
	{Name: "assists", Weight: 1.5},
	{Name: "blocks", Weight: 3.0},
	{Name: "steals", Weight: 3.0},
	{Name: "turnover", Weight: -1.0},
}

// HeadToHeadCategories returns the weight table in declaration order.
func HeadToHeadCategories() []Category {
	return slices.Clone(headToHead[:])
}

// Weight returns the weight for a head-to-head category name.
func Weight(name string) (float64, bool) {
	i := categoryIndex(name)
	if i < 0 {
		return 0, false
	}
	return headToHead[i].Weight, true
}

func categoryIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	return slices.IndexFunc(headToHead[:], func(c Category) bool { return c.Name == name })
}

// ScoreHeadToHead returns the weighted total of values, which must follow
// the order of HeadToHeadCategories. A vector of the wrong length scores 0.
func ScoreHeadToHead(values []float64) float64 {
	total, err := Score(values)
	if err != nil {
		return 0
	}
	return total
}

// Score is ScoreHeadToHead that reports a length mismatch instead of
// scoring zero.
func Score(values []float64) (float64, error) {
	if len(values) != len(headToHead) {
		return 0, fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(values), len(headToHead))
	}
	var total float64
	for i, c := range headToHead {
		total += c.Weight * values[i]
	}
	return total, nil
}

// ScoreNamed scores a stat line keyed by category name. Missing categories
// count as zero. Two keys naming the same category are an error.
func ScoreNamed(values map[string]float64) (float64, error) {
	vec := make([]float64, len(headToHead))
	seen := make([]string, len(headToHead))
	for name, v := range values {
		i := categoryIndex(name)
		if i < 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		if seen[i] != "" {
			return 0, fmt.Errorf("%w: %q and %q", ErrDuplicateCategory, seen[i], name)
		}
		seen[i] = name
		vec[i] = v
	}
	return Score(vec)
}
