package strategy

import (
	"fmt"

	"github.com/fantasyball/hoops/internal/roundrobin"
)

// Game represents a single weekly matchup between two teams.
type Game struct {
	Week  int // 1-based matchup week
	Home  string
	Away  string
	Label string // unique identifier like "Game 1"
}

// Strategy generates the list of matchups for a season.
type Strategy interface {
	GenerateMatchups(teams []string, weeks int) ([]Game, error)
}

// Get returns a Strategy by name.
func Get(name string) (Strategy, error) {
	switch name {
	case "round_robin":
		return &RoundRobin{}, nil
	case "balanced_round_robin":
		return &RoundRobin{Balanced: true}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
}

// RoundRobin plays every opponent once per cycle of n-1 weeks and repeats
// the cycle for longer seasons. Team i in the list is participant i.
//
// Unbalanced, the pairing's first participant is home. Balanced, the fixed
// participant alternates home and away week to week and every other cycle
// swaps home and away, so two full cycles give each team n-1 home games.
type RoundRobin struct {
	Balanced bool
}

func (s *RoundRobin) GenerateMatchups(teams []string, weeks int) ([]Game, error) {
	n := len(teams)
	sched, err := roundrobin.Compute(n, weeks)
	if err != nil {
		return nil, fmt.Errorf("computing matchups: %w", err)
	}

	var games []Game
	gameNum := 1
	for w, round := range sched {
		cycle, inCycle := w/(n-1), w%(n-1)
		for i, p := range round {
			home, away := teams[p.First], teams[p.Second]
			if s.Balanced {
				swap := cycle%2 == 1
				if i == 0 && inCycle%2 == 1 {
					swap = !swap
				}
				if swap {
					home, away = away, home
				}
			}
			games = append(games, Game{
				Week:  w + 1,
				Home:  home,
				Away:  away,
				Label: fmt.Sprintf("Game %d", gameNum),
			})
			gameNum++
		}
	}
	return games, nil
}
