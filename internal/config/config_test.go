package config

import (
	"strings"
	"testing"
	"time"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

const testConfigYAML = `
league:
  name: Office Hoops
  teams: [Ballers, Bricklayers, Dunkers, Hoopers]

season:
  start_date: "2026-10-19"
  regular_season_weeks: 12
  playoff_weeks: 2
  blackout_weeks:
    - date: "2026-12-24"
      reason: "Holiday break"

strategy: balanced_round_robin

rules:
  max_games_per_week: 1

guidelines:
  min_weeks_between_rematch: 3
  max_home_away_imbalance: 2
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(testConfigYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("league", func(t *testing.T) {
		if cfg.League.Name != "Office Hoops" {
			t.Errorf("name = %q, want Office Hoops", cfg.League.Name)
		}
		if len(cfg.AllTeams()) != 4 {
			t.Errorf("teams = %d, want 4", len(cfg.AllTeams()))
		}
	})

	t.Run("season", func(t *testing.T) {
		if cfg.Season.StartDate.Time != mustDate("2026-10-19") {
			t.Errorf("start date = %v, want 2026-10-19", cfg.Season.StartDate.Time)
		}
		if cfg.Season.RegularSeasonWeeks != 12 {
			t.Errorf("regular season weeks = %d, want 12", cfg.Season.RegularSeasonWeeks)
		}
		if cfg.Season.Playoffs() != 2 {
			t.Errorf("playoff weeks = %d, want 2", cfg.Season.Playoffs())
		}
	})

	t.Run("blackout weeks", func(t *testing.T) {
		if len(cfg.Season.BlackoutWeeks) != 1 {
			t.Fatalf("blackout weeks = %d, want 1", len(cfg.Season.BlackoutWeeks))
		}
		b := cfg.Season.BlackoutWeeks[0]
		if b.Date.Time != mustDate("2026-12-24") || b.Reason != "Holiday break" {
			t.Errorf("blackout = %v %q", b.Date.Time, b.Reason)
		}
	})

	t.Run("strategy and guidelines", func(t *testing.T) {
		if cfg.Strategy != "balanced_round_robin" {
			t.Errorf("strategy = %q", cfg.Strategy)
		}
		if cfg.Guidelines.MinWeeksBetweenRematch != 3 {
			t.Errorf("min weeks between rematch = %d, want 3", cfg.Guidelines.MinWeeksBetweenRematch)
		}
		if cfg.Guidelines.MaxHomeAwayImbalance != 2 {
			t.Errorf("max home/away imbalance = %d, want 2", cfg.Guidelines.MaxHomeAwayImbalance)
		}
	})
}

func TestDefaults(t *testing.T) {
	yaml := `
league:
  teams: [A, B]
season:
  start_date: "2026-10-19"
`
	cfg, err := LoadFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Season.RegularSeasonWeeks != DefaultRegularSeasonWeeks {
		t.Errorf("regular season weeks = %d, want %d", cfg.Season.RegularSeasonWeeks, DefaultRegularSeasonWeeks)
	}
	if cfg.Season.Playoffs() != DefaultPlayoffWeeks {
		t.Errorf("playoff weeks = %d, want %d", cfg.Season.Playoffs(), DefaultPlayoffWeeks)
	}
	if cfg.Strategy != "round_robin" {
		t.Errorf("strategy = %q, want round_robin", cfg.Strategy)
	}
	if cfg.Rules.MaxGamesPerWeek != 1 {
		t.Errorf("max games per week = %d, want 1", cfg.Rules.MaxGamesPerWeek)
	}
}

func TestZeroPlayoffWeeks(t *testing.T) {
	yaml := `
league:
  teams: [A, B]
season:
  start_date: "2026-10-19"
  playoff_weeks: 0
`
	cfg, err := LoadFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Season.Playoffs() != 0 {
		t.Errorf("playoff weeks = %d, want 0", cfg.Season.Playoffs())
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "odd team count",
			yaml: `
league:
  teams: [A, B, C]
season:
  start_date: "2026-10-19"
`,
			wantErr: "league has 3 teams",
		},
		{
			name: "too many teams",
			yaml: `
league:
  teams: [T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16, T17, T18, T19, T20, T21, T22]
season:
  start_date: "2026-10-19"
`,
			wantErr: "league has 22 teams",
		},
		{
			name: "duplicate team",
			yaml: `
league:
  teams: [A, A]
season:
  start_date: "2026-10-19"
`,
			wantErr: "appears more than once",
		},
		{
			name: "duplicate team ignoring case",
			yaml: `
league:
  teams: [Ballers, ballers]
season:
  start_date: "2026-10-19"
`,
			wantErr: `team "ballers" collides with "Ballers"`,
		},
		{
			name: "team named like the scoring sheet",
			yaml: `
league:
  teams: [scoring, Ballers]
season:
  start_date: "2026-10-19"
`,
			wantErr: `collides with "Scoring"`,
		},
		{
			name: "team named like the master sheet",
			yaml: `
league:
  teams: [MASTER SCHEDULE, Ballers]
season:
  start_date: "2026-10-19"
`,
			wantErr: `collides with "Master Schedule"`,
		},
		{
			name: "team named like the default sheet",
			yaml: `
league:
  teams: [Sheet1, Ballers]
season:
  start_date: "2026-10-19"
`,
			wantErr: `collides with "Sheet1"`,
		},
		{
			name: "team name too long",
			yaml: `
league:
  teams: [The Extremely Long Named Basketball Club, Ballers]
season:
  start_date: "2026-10-19"
`,
			wantErr: "the limit is 31",
		},
		{
			name: "team name with sheet character",
			yaml: `
league:
  teams: ["Ballers/Dunkers", Hoopers]
season:
  start_date: "2026-10-19"
`,
			wantErr: "cannot contain any of",
		},
		{
			name: "team name with game separator",
			yaml: `
league:
  teams: ["Away @ Home", Hoopers]
season:
  start_date: "2026-10-19"
`,
			wantErr: `cannot contain " @ "`,
		},
		{
			name: "blank team name",
			yaml: `
league:
  teams: ["  ", Hoopers]
season:
  start_date: "2026-10-19"
`,
			wantErr: "cannot be empty",
		},
		{
			name: "missing start date",
			yaml: `
league:
  teams: [A, B]
`,
			wantErr: "start_date is required",
		},
		{
			name: "bad date",
			yaml: `
league:
  teams: [A, B]
season:
  start_date: "10/19/2026"
`,
			wantErr: "invalid date",
		},
		{
			name: "negative weeks",
			yaml: `
league:
  teams: [A, B]
season:
  start_date: "2026-10-19"
  regular_season_weeks: -1
`,
			wantErr: "regular_season_weeks",
		},
		{
			name: "negative playoffs",
			yaml: `
league:
  teams: [A, B]
season:
  start_date: "2026-10-19"
  playoff_weeks: -2
`,
			wantErr: "playoff_weeks",
		},
		{
			name: "blackout before season",
			yaml: `
league:
  teams: [A, B]
season:
  start_date: "2026-10-19"
  blackout_weeks:
    - date: "2026-10-01"
      reason: early
`,
			wantErr: "before season start",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(t.TempDir() + "/missing.yaml")
	if err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("error = %v, want reading config file error", err)
	}
}

func TestLineupPositions(t *testing.T) {
	got := LineupPositions()
	if strings.Join(got, ",") != "PG,SG,G,SF,PF,F,C,C,UTIL,UTIL" {
		t.Errorf("LineupPositions() = %v", got)
	}
	got[0] = "X"
	if LineupPositions()[0] != "PG" {
		t.Error("LineupPositions() returned shared storage")
	}
}
