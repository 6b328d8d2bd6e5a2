package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fantasyball/hoops/internal/roundrobin"
	"github.com/fantasyball/hoops/internal/scoring"
)

func newMatchupsCmd() *cobra.Command {
	var maxSize int
	cmd := &cobra.Command{
		Use:          "matchups <league-size> <rounds>",
		Short:        "Print the round-robin pairings for a league size",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid league size %q", args[0])
			}
			rounds, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rounds %q", args[1])
			}

			var opts []roundrobin.Option
			if maxSize > 0 {
				opts = append(opts, roundrobin.WithMaxSize(maxSize))
			}
			sched, err := roundrobin.New(opts...).Compute(size, rounds)
			if err != nil {
				return err
			}
			writeMatchups(cmd.OutOrStdout(), sched)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Allow any even league size up to this value")
	return cmd
}

func writeMatchups(w io.Writer, sched roundrobin.Schedule) {
	for i, round := range sched {
		pairs := make([]string, len(round))
		for j, p := range round {
			pairs[j] = p.String()
		}
		fmt.Fprintf(w, "Round %d: %s\n", i+1, strings.Join(pairs, " "))
	}
}

func newScoreCmd() *cobra.Command {
	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Score head-to-head and category matchups",
	}

	var stats map[string]string
	h2hCmd := &cobra.Command{
		Use:          "h2h [points rebounds assists blocks steals turnover]",
		Short:        "Compute a head-to-head fantasy score",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := scoreHeadToHead(args, stats)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", total)
			return nil
		},
	}
	h2hCmd.Flags().StringToStringVar(&stats, "stat", nil, "Category value by name (points, rebounds, assists, blocks, steals, turnover)")

	var home, away []float64
	categoriesCmd := &cobra.Command{
		Use:          "categories",
		Short:        "Compare two stat lines category by category",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := scoring.CompareCategories(home, away)
			if err != nil {
				return err
			}
			writeCategoryResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	categoriesCmd.Flags().Float64SliceVar(&home, "home", nil, "Home stat line in FG%,FT%,3PTM,PTS,REB,AST,ST,BLK,TO order")
	categoriesCmd.Flags().Float64SliceVar(&away, "away", nil, "Away stat line in the same order")

	scoreCmd.AddCommand(h2hCmd, categoriesCmd)
	return scoreCmd
}

// scoreHeadToHead scores either positional args or named --stat values.
func scoreHeadToHead(args []string, stats map[string]string) (float64, error) {
	if len(args) > 0 && len(stats) > 0 {
		return 0, fmt.Errorf("pass either positional values or --stat, not both")
	}

	if len(stats) > 0 {
		named := make(map[string]float64, len(stats))
		for name, raw := range stats {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid value for %s: %q", name, raw)
			}
			named[name] = v
		}
		return scoring.ScoreNamed(named)
	}

	values := make([]float64, len(args))
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid value %q", raw)
		}
		values[i] = v
	}
	return scoring.Score(values)
}

func writeCategoryResult(w io.Writer, res scoring.CategoryResult) {
	for i, c := range scoring.CategoryStats() {
		outcome := "tie"
		switch res.Winners[i] {
		case 1:
			outcome = "home"
		case -1:
			outcome = "away"
		}
		fmt.Fprintf(w, "  %-5s %s\n", c.Abbrev, outcome)
	}
	fmt.Fprintf(w, "Home record: %s\n", res.Record())
}
