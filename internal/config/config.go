package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fantasyball/hoops/internal/roundrobin"
)

const (
	// DefaultRegularSeasonWeeks is the number of matchup weeks before playoffs.
	DefaultRegularSeasonWeeks = 16
	// DefaultPlayoffWeeks is the number of playoff weeks after the regular season.
	DefaultPlayoffWeeks = 3
)

// Workbook sheet names that team sheets share a namespace with.
const (
	MasterSheet  = "Master Schedule"
	ScoringSheet = "Scoring"
	DefaultSheet = "Sheet1"
)

// Team names become sheet names and master schedule cells.
const (
	maxTeamNameLen   = 31
	invalidNameChars = `:\/?*[]`
	gameSeparator    = " @ "
)

var lineupPositions = [...]string{"PG", "SG", "G", "SF", "PF", "F", "C", "C", "UTIL", "UTIL"}

// LineupPositions returns the starting lineup slots in display order.
func LineupPositions() []string {
	return slices.Clone(lineupPositions[:])
}

// Date is a wrapper around time.Time for YAML date parsing.
type Date struct {
	Time time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value.Value, err)
	}
	d.Time = t
	return nil
}

type League struct {
	Name  string   `yaml:"name"`
	Teams []string `yaml:"teams"`
}

type BlackoutWeek struct {
	Date   Date   `yaml:"date"`
	Reason string `yaml:"reason"`
}

type Season struct {
	StartDate          Date           `yaml:"start_date"`
	RegularSeasonWeeks int            `yaml:"regular_season_weeks"`
	PlayoffWeeks       *int           `yaml:"playoff_weeks"`
	BlackoutWeeks      []BlackoutWeek `yaml:"blackout_weeks"`
}

// Playoffs returns the configured playoff weeks, or the default when unset.
func (s Season) Playoffs() int {
	if s.PlayoffWeeks == nil {
		return DefaultPlayoffWeeks
	}
	return *s.PlayoffWeeks
}

type Rules struct {
	MaxGamesPerWeek int `yaml:"max_games_per_week"`
}

type Guidelines struct {
	MinWeeksBetweenRematch int `yaml:"min_weeks_between_rematch"`
	MaxHomeAwayImbalance   int `yaml:"max_home_away_imbalance"`
}

type Config struct {
	League     League     `yaml:"league"`
	Season     Season     `yaml:"season"`
	Strategy   string     `yaml:"strategy"`
	Rules      Rules      `yaml:"rules"`
	Guidelines Guidelines `yaml:"guidelines"`
}

// AllTeams returns the team names in league order. A team's position is its
// participant index in the round-robin.
func (c *Config) AllTeams() []string {
	return slices.Clone(c.League.Teams)
}

// LoadFromBytes parses YAML bytes into a Config, applies defaults and
// validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) applyDefaults() {
	if c.Season.RegularSeasonWeeks == 0 {
		c.Season.RegularSeasonWeeks = DefaultRegularSeasonWeeks
	}
	if c.Strategy == "" {
		c.Strategy = "round_robin"
	}
	if c.Rules.MaxGamesPerWeek == 0 {
		c.Rules.MaxGamesPerWeek = 1
	}
}

func (c *Config) validate() error {
	if c.Season.StartDate.Time.IsZero() {
		return fmt.Errorf("season start_date is required")
	}

	if c.Season.RegularSeasonWeeks < 1 {
		return fmt.Errorf("regular_season_weeks must be at least 1, got %d", c.Season.RegularSeasonWeeks)
	}

	if p := c.Season.Playoffs(); p < 0 {
		return fmt.Errorf("playoff_weeks cannot be negative, got %d", p)
	}

	n := len(c.League.Teams)
	if !roundrobin.IsValidSize(n) {
		return fmt.Errorf("league has %d teams; supported sizes are %v", n, roundrobin.SupportedSizes())
	}

	// Sheet names are case-insensitive.
	seen := make(map[string]string)
	for _, team := range c.League.Teams {
		if err := checkTeamName(team); err != nil {
			return err
		}
		for _, sheet := range []string{MasterSheet, ScoringSheet, DefaultSheet} {
			if strings.EqualFold(team, sheet) {
				return fmt.Errorf("team %q collides with %q", team, sheet)
			}
		}
		key := strings.ToLower(team)
		if prev, ok := seen[key]; ok {
			if prev == team {
				return fmt.Errorf("team %q appears more than once", team)
			}
			return fmt.Errorf("team %q collides with %q", team, prev)
		}
		seen[key] = team
	}

	for _, b := range c.Season.BlackoutWeeks {
		if b.Date.Time.Before(c.Season.StartDate.Time) {
			return fmt.Errorf("blackout date %s is before season start %s",
				b.Date.Time.Format("2006-01-02"),
				c.Season.StartDate.Time.Format("2006-01-02"))
		}
	}

	if c.Rules.MaxGamesPerWeek < 1 {
		return fmt.Errorf("max_games_per_week must be at least 1, got %d", c.Rules.MaxGamesPerWeek)
	}

	return nil
}

func checkTeamName(team string) error {
	if strings.TrimSpace(team) == "" {
		return fmt.Errorf("team names cannot be empty")
	}
	if n := len([]rune(team)); n > maxTeamNameLen {
		return fmt.Errorf("team %q is %d characters; the limit is %d", team, n, maxTeamNameLen)
	}
	if strings.ContainsAny(team, invalidNameChars) {
		return fmt.Errorf("team %q cannot contain any of %s", team, invalidNameChars)
	}
	if strings.Contains(team, gameSeparator) {
		return fmt.Errorf("team %q cannot contain %q", team, gameSeparator)
	}
	return nil
}
