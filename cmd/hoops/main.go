package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fantasyball/hoops/internal/config"
	"github.com/fantasyball/hoops/internal/excel"
	"github.com/fantasyball/hoops/internal/schedule"
	"github.com/fantasyball/hoops/internal/strategy"
	"github.com/fantasyball/hoops/internal/validator"
)

const defaultConfigFile = "league.yaml"

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass --config", defaultConfigFile)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hoops",
		Short: "Fantasy basketball league scheduler",
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter league.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and validate season schedules",
	}

	var configFile string
	scheduleCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: league.yaml in current directory)")

	var outputFile string
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a season schedule from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runGenerate(cmd, configPath, outputFile)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")

	validateCmd := &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate a schedule against config rules",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runValidate(cmd, configPath, args[0])
		},
	}

	scheduleCmd.AddCommand(generateCmd, validateCmd)
	rootCmd.AddCommand(initCmd, scheduleCmd, newMatchupsCmd(), newScoreCmd())
	return rootCmd
}

func runInit(cmd *cobra.Command, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# Fantasy League Season Configuration
# ====================================
# This file defines the parameters for generating a head-to-head schedule.

# The league and its teams. The number of teams must be even, from 2 to 20.
# A team's position in the list is its seat in the round-robin rotation.
league:
  name: Office Hoops
  teams: [Ballers, Bricklayers, Dunkers, Hoopers, Swishers, Splashers, Rim Rockers, Sixth Men]

# Season defines the matchup calendar. Each matchup week is seven days long,
# starting on start_date.
season:
  start_date: "2026-10-19"
  regular_season_weeks: 16
  playoff_weeks: 3

  # Any matchup week containing a blackout date is skipped entirely and the
  # remaining weeks shift back by one.
  blackout_weeks:
    - date: "2026-12-24"
      reason: "Holiday break"

# Strategy determines how weekly matchups are assigned.
# "round_robin" plays every opponent once every (teams - 1) weeks and repeats
# the cycle for longer seasons. "balanced_round_robin" does the same but
# alternates home and away so that two full cycles are exactly even.
strategy: balanced_round_robin

# Rules are hard constraints. A schedule that violates these is invalid.
rules:
  max_games_per_week: 1            # No team has more than one matchup a week

# Guidelines are soft constraints. Violations are reported as warnings, not
# errors, so manual edits that intentionally break them are allowed.
guidelines:
  min_weeks_between_rematch: 4     # Minimum weeks before two teams meet again
  max_home_away_imbalance: 2       # Largest allowed home/away difference per team
`

func runGenerate(cmd *cobra.Command, configPath, outputPath string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	strat, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return err
	}

	games, err := strat.GenerateMatchups(cfg.AllTeams(), cfg.Season.RegularSeasonWeeks)
	if err != nil {
		return fmt.Errorf("generating matchups: %w", err)
	}
	weeks := schedule.GenerateWeeks(cfg)
	playoffs := schedule.GeneratePlayoffWeeks(cfg)
	blackouts := schedule.GenerateBlackoutWeeks(cfg)

	fmt.Fprintf(out, "Scheduling %d games across %d matchup weeks (%d playoff weeks, %d blackout weeks)...\n",
		len(games), len(weeks), len(playoffs), len(blackouts))

	result, schedErr := schedule.Schedule(cfg, weeks, games)

	if schedErr != nil {
		fmt.Fprintf(errOut, "⚠ %s\n", schedErr)
		fmt.Fprintf(errOut, "\nGenerating partial schedule...\n")
	} else {
		fmt.Fprintf(out, "✓ All %d games scheduled\n", len(result.Assignments))
	}

	fmt.Fprintln(out, "\nPer Team Metrics:")
	fmt.Fprintf(out, "  %-15s %6s %5s %5s\n", "Team", "Games", "Home", "Away")
	for _, team := range cfg.AllTeams() {
		m := result.TeamMetrics[team]
		fmt.Fprintf(out, "  %-15s %6d %5d %5d\n", team, m.Games, m.Home, m.Away)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "\nGuideline violations (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  ⚠ %s\n", w)
		}
	} else {
		fmt.Fprintln(out, "\n✓ No guideline violations")
	}

	allWeeks := append(weeks, playoffs...)
	f, err := excel.Generate(cfg, result, allWeeks, blackouts)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Schedule saved to %s\n", outputPath)
	if schedErr != nil {
		return fmt.Errorf("schedule is incomplete: %d of %d games scheduled", len(result.Assignments), len(games))
	}
	return nil
}

func runValidate(cmd *cobra.Command, configPath, schedulePath string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	violations, err := validator.Validate(cfg, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		switch v.Type {
		case "error":
			errors++
			fmt.Fprintf(out, "✗ Rule violation: %s\n", v.Message)
		case "warning":
			warnings++
			fmt.Fprintf(out, "⚠ Guideline violation: %s\n", v.Message)
		}
	}

	fmt.Fprintf(out, "\nValidation complete: %d rule violations, %d guideline violations\n", errors, warnings)

	// Regenerate team sheets from master schedule
	if err := excel.UpdateTeamSheets(schedulePath, cfg); err != nil {
		return fmt.Errorf("updating team sheets: %w", err)
	}
	fmt.Fprintf(out, "✓ Team sheets updated in %s\n", schedulePath)

	if errors > 0 {
		return fmt.Errorf("%d constraint violations found", errors)
	}
	return nil
}
