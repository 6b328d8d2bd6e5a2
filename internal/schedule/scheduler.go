package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fantasyball/hoops/internal/config"
	"github.com/fantasyball/hoops/internal/strategy"
)

// Assignment pairs a game with the week it is played in.
type Assignment struct {
	Game strategy.Game
	Week Week
}

// TeamMetrics holds per-team schedule statistics.
type TeamMetrics struct {
	Games      int
	Home       int
	Away       int
	Opponents  map[string]int
	Violations []string
}

// Result is the output of the scheduling process.
type Result struct {
	Assignments []Assignment
	Warnings    []string
	TeamMetrics map[string]*TeamMetrics
}

// Schedule places each game in the week matching its Game.Week.
// On failure, returns a partial Result alongside the error.
func Schedule(cfg *config.Config, weeks []Week, games []strategy.Game) (*Result, error) {
	s := newScheduler(cfg, weeks)
	for _, g := range games {
		s.place(g)
	}
	warnings, metrics := s.buildMetrics()
	res := &Result{
		Assignments: s.assignments,
		Warnings:    warnings,
		TeamMetrics: metrics,
	}
	if len(s.unscheduled) > 0 {
		return res, s.buildFailureError(len(games))
	}
	return res, nil
}

// rejectionReason categorizes why a game could not be placed.
type rejectionReason int

const (
	rejectNoWeek rejectionReason = iota
	rejectMaxWeekGames
)

func (r rejectionReason) String() string {
	switch r {
	case rejectNoWeek:
		return "no matchup week left"
	case rejectMaxWeekGames:
		return "team already at weekly game limit"
	default:
		return "unknown"
	}
}

type unscheduledGame struct {
	game   strategy.Game
	reason rejectionReason
}

type scheduler struct {
	cfg   *config.Config
	weeks []Week

	assignments []Assignment
	teamWeek    map[teamWeekKey]int
	unscheduled []unscheduledGame
}

type teamWeekKey struct {
	team string
	week int
}

type matchupKey struct {
	a, b string
}

func normalizeMatchup(a, b string) matchupKey {
	if a > b {
		a, b = b, a
	}
	return matchupKey{a, b}
}

func newScheduler(cfg *config.Config, weeks []Week) *scheduler {
	return &scheduler{
		cfg:      cfg,
		weeks:    weeks,
		teamWeek: make(map[teamWeekKey]int),
	}
}

func (s *scheduler) place(g strategy.Game) {
	idx := g.Week - 1
	if idx < 0 || idx >= len(s.weeks) {
		s.unscheduled = append(s.unscheduled, unscheduledGame{g, rejectNoWeek})
		return
	}
	w := s.weeks[idx]
	limit := s.cfg.Rules.MaxGamesPerWeek
	if s.teamWeek[teamWeekKey{g.Home, w.Number}] >= limit || s.teamWeek[teamWeekKey{g.Away, w.Number}] >= limit {
		s.unscheduled = append(s.unscheduled, unscheduledGame{g, rejectMaxWeekGames})
		return
	}
	s.teamWeek[teamWeekKey{g.Home, w.Number}]++
	s.teamWeek[teamWeekKey{g.Away, w.Number}]++
	s.assignments = append(s.assignments, Assignment{Game: g, Week: w})
}

func (s *scheduler) buildFailureError(total int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "could not schedule all %d games into %d matchup weeks", total, len(s.weeks))
	fmt.Fprintf(&b, "\n\nScheduled %d of %d games (%d unscheduled)", len(s.assignments), total, len(s.unscheduled))
	b.WriteString("\n\nUnscheduled games:")
	for _, u := range s.unscheduled {
		fmt.Fprintf(&b, "\n  • week %d: %s vs %s (%s)", u.game.Week, u.game.Home, u.game.Away, u.reason)
	}
	return fmt.Errorf("%s", b.String())
}

func (s *scheduler) buildMetrics() ([]string, map[string]*TeamMetrics) {
	var warnings []string
	metrics := make(map[string]*TeamMetrics)

	teams := s.cfg.AllTeams()
	for _, team := range teams {
		metrics[team] = &TeamMetrics{Opponents: make(map[string]int)}
	}
	metric := func(team string) *TeamMetrics {
		m, ok := metrics[team]
		if !ok {
			m = &TeamMetrics{Opponents: make(map[string]int)}
			metrics[team] = m
		}
		return m
	}

	matchups := make(map[matchupKey][]time.Time)
	for _, a := range s.assignments {
		home, away := metric(a.Game.Home), metric(a.Game.Away)
		home.Games++
		home.Home++
		home.Opponents[a.Game.Away]++
		away.Games++
		away.Away++
		away.Opponents[a.Game.Home]++

		mk := normalizeMatchup(a.Game.Home, a.Game.Away)
		matchups[mk] = append(matchups[mk], a.Week.Start)
	}

	// Rematch spacing
	if minWeeks := s.cfg.Guidelines.MinWeeksBetweenRematch; minWeeks > 0 {
		keys := make([]matchupKey, 0, len(matchups))
		for mk := range matchups {
			keys = append(keys, mk)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].a != keys[j].a {
				return keys[i].a < keys[j].a
			}
			return keys[i].b < keys[j].b
		})
		for _, mk := range keys {
			dates := matchups[mk]
			sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
			for i := 1; i < len(dates); i++ {
				weeksBetween := WeeksApart(dates[i-1], dates[i])
				if weeksBetween < minWeeks {
					w := fmt.Sprintf("%s vs %s rematch after only %d weeks (min %d): %s and %s",
						mk.a, mk.b, weeksBetween, minWeeks,
						dates[i-1].Format("01/02"), dates[i].Format("01/02"))
					warnings = append(warnings, w)
					metrics[mk.a].Violations = append(metrics[mk.a].Violations, w)
					metrics[mk.b].Violations = append(metrics[mk.b].Violations, w)
				}
			}
		}
	}

	// Home/away balance
	if maxDiff := s.cfg.Guidelines.MaxHomeAwayImbalance; maxDiff > 0 {
		for _, team := range teams {
			m := metrics[team]
			diff := m.Home - m.Away
			if diff < 0 {
				diff = -diff
			}
			if diff > maxDiff {
				w := fmt.Sprintf("%s home/away imbalance: %d home, %d away (max difference %d)",
					team, m.Home, m.Away, maxDiff)
				warnings = append(warnings, w)
				m.Violations = append(m.Violations, w)
			}
		}
	}

	return warnings, metrics
}
