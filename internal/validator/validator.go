package validator

import (
	"fmt"
	"sort"
	"time"

	"github.com/fantasyball/hoops/internal/config"
	"github.com/fantasyball/hoops/internal/excel"
	"github.com/fantasyball/hoops/internal/roundrobin"
	"github.com/fantasyball/hoops/internal/schedule"
	"github.com/xuri/excelize/v2"
)

// Violation represents a constraint violation found during validation.
type Violation struct {
	Row     int
	Type    string // "error" or "warning"
	Message string
	Weeks   int // for rematch violations: weeks between games (0 = not applicable)
}

// Validate reads a schedule Excel file and checks it against the config rules.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	master, err := excel.ReadMasterSchedule(f)
	if err != nil {
		return nil, fmt.Errorf("reading assignments: %w", err)
	}

	games := make([]parsedGame, len(master))
	for i, m := range master {
		games[i] = parsedGame{
			Row:   m.Row,
			Week:  m.Week.Number,
			Start: m.Week.Start,
			Home:  m.Game.Home,
			Away:  m.Game.Away,
		}
	}

	return check(cfg, games), nil
}

func check(cfg *config.Config, games []parsedGame) []Violation {
	var violations []Violation

	// Check hard constraints
	violations = append(violations, checkUnknownTeams(cfg, games)...)
	violations = append(violations, checkMaxGamesPerWeek(cfg, games)...)
	violations = append(violations, checkWeeklyMatching(cfg, games)...)
	violations = append(violations, checkGameCompleteness(cfg, games)...)

	// Check soft constraints
	violations = append(violations, checkRematchProximity(cfg, games)...)
	violations = append(violations, checkHomeAwayBalance(cfg, games)...)

	return violations
}

type parsedGame struct {
	Row   int
	Week  int
	Start time.Time
	Home  string
	Away  string
}

func checkUnknownTeams(cfg *config.Config, games []parsedGame) []Violation {
	known := teamIndex(cfg)
	var violations []Violation
	for _, g := range games {
		for _, team := range []string{g.Home, g.Away} {
			if _, ok := known[team]; !ok {
				violations = append(violations, Violation{
					Row:     g.Row,
					Type:    "error",
					Message: fmt.Sprintf("unknown team %q in week %d", team, g.Week),
				})
			}
		}
		if g.Home == g.Away {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("%s plays itself in week %d", g.Home, g.Week),
			})
		}
	}
	return violations
}

func checkMaxGamesPerWeek(cfg *config.Config, games []parsedGame) []Violation {
	type teamWeek struct {
		team string
		week int
	}
	counts := make(map[teamWeek][]int)
	for _, g := range games {
		counts[teamWeek{g.Home, g.Week}] = append(counts[teamWeek{g.Home, g.Week}], g.Row)
		counts[teamWeek{g.Away, g.Week}] = append(counts[teamWeek{g.Away, g.Week}], g.Row)
	}

	var violations []Violation
	for tw, rows := range counts {
		if len(rows) > cfg.Rules.MaxGamesPerWeek {
			violations = append(violations, Violation{
				Row:     rows[0],
				Type:    "error",
				Message: fmt.Sprintf("%s plays %d games in week %d (max %d)", tw.team, len(rows), tw.week, cfg.Rules.MaxGamesPerWeek),
			})
		}
	}
	sortViolations(violations)
	return violations
}

// checkWeeklyMatching reports weeks where the matchups do not pair every
// team exactly once.
func checkWeeklyMatching(cfg *config.Config, games []parsedGame) []Violation {
	idx := teamIndex(cfg)
	n := len(cfg.League.Teams)

	weeks := make(map[int]roundrobin.Round)
	rows := make(map[int]int)
	for _, g := range games {
		h, okH := idx[g.Home]
		a, okA := idx[g.Away]
		if !okH || !okA {
			continue // reported by checkUnknownTeams
		}
		weeks[g.Week] = append(weeks[g.Week], roundrobin.Pairing{First: h, Second: a})
		if _, ok := rows[g.Week]; !ok {
			rows[g.Week] = g.Row
		}
	}

	var violations []Violation
	for week, round := range weeks {
		if err := round.Check(n); err != nil {
			violations = append(violations, Violation{
				Row:     rows[week],
				Type:    "error",
				Message: fmt.Sprintf("week %d is not a full round: %v", week, err),
			})
		}
	}
	sortViolations(violations)
	return violations
}

func checkGameCompleteness(cfg *config.Config, games []parsedGame) []Violation {
	counts := make(map[string]int)
	for _, g := range games {
		counts[g.Home]++
		counts[g.Away]++
	}

	var violations []Violation
	for _, team := range cfg.AllTeams() {
		if counts[team] == 0 {
			violations = append(violations, Violation{
				Type:    "error",
				Message: fmt.Sprintf("%s has no games scheduled", team),
			})
		}
	}
	return violations
}

func checkRematchProximity(cfg *config.Config, games []parsedGame) []Violation {
	if cfg.Guidelines.MinWeeksBetweenRematch <= 0 {
		return nil
	}

	type matchup struct{ a, b string }
	matchDates := make(map[matchup][]time.Time)
	for _, g := range games {
		a, b := g.Home, g.Away
		if a > b {
			a, b = b, a
		}
		matchDates[matchup{a, b}] = append(matchDates[matchup{a, b}], g.Start)
	}

	var violations []Violation
	for mk, dates := range matchDates {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		for i := 1; i < len(dates); i++ {
			weeks := schedule.WeeksApart(dates[i-1], dates[i])
			if weeks < cfg.Guidelines.MinWeeksBetweenRematch {
				violations = append(violations, Violation{
					Type:  "warning",
					Weeks: weeks,
					Message: fmt.Sprintf("%s vs %s rematch after %d weeks (min %d): %s and %s",
						mk.a, mk.b, weeks, cfg.Guidelines.MinWeeksBetweenRematch,
						dates[i-1].Format("01/02"), dates[i].Format("01/02")),
				})
			}
		}
	}
	// Sort by severity: fewest weeks (worst) first
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Weeks != violations[j].Weeks {
			return violations[i].Weeks < violations[j].Weeks
		}
		return violations[i].Message < violations[j].Message
	})
	return violations
}

func checkHomeAwayBalance(cfg *config.Config, games []parsedGame) []Violation {
	maxDiff := cfg.Guidelines.MaxHomeAwayImbalance
	if maxDiff <= 0 {
		return nil
	}

	home := make(map[string]int)
	away := make(map[string]int)
	for _, g := range games {
		home[g.Home]++
		away[g.Away]++
	}

	var violations []Violation
	for _, team := range cfg.AllTeams() {
		diff := home[team] - away[team]
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDiff {
			violations = append(violations, Violation{
				Type: "warning",
				Message: fmt.Sprintf("%s home/away imbalance: %d home, %d away (max difference %d)",
					team, home[team], away[team], maxDiff),
			})
		}
	}
	return violations
}

func teamIndex(cfg *config.Config) map[string]int {
	idx := make(map[string]int, len(cfg.League.Teams))
	for i, team := range cfg.League.Teams {
		idx[team] = i
	}
	return idx
}

func sortViolations(v []Violation) {
	sort.Slice(v, func(i, j int) bool {
		if v[i].Row != v[j].Row {
			return v[i].Row < v[j].Row
		}
		return v[i].Message < v[j].Message
	})
}
