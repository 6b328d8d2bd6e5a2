package strategy

import (
	"errors"
	"testing"

	"github.com/fantasyball/hoops/internal/roundrobin"
)

func testTeams() []string {
	return []string{"Ballers", "Bricklayers", "Dunkers", "Hoopers", "Swishers", "Splashers"}
}

func TestGet(t *testing.T) {
	for _, name := range []string{"round_robin", "balanced_round_robin"} {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q) error: %v", name, err)
		}
	}
	if _, err := Get("swiss"); err == nil {
		t.Error("Get(swiss) expected error")
	}
}

func TestRoundRobinMatchups(t *testing.T) {
	s := &RoundRobin{}
	teams := testTeams()
	games, err := s.GenerateMatchups(teams, 5)
	if err != nil {
		t.Fatalf("GenerateMatchups() error: %v", err)
	}

	t.Run("total game count", func(t *testing.T) {
		// 6 teams, 3 games a week, 5 weeks
		if len(games) != 15 {
			t.Errorf("total games = %d, want 15", len(games))
		}
	})

	t.Run("each team plays once per week", func(t *testing.T) {
		type teamWeek struct {
			team string
			week int
		}
		counts := make(map[teamWeek]int)
		for _, g := range games {
			counts[teamWeek{g.Home, g.Week}]++
			counts[teamWeek{g.Away, g.Week}]++
		}
		for w := 1; w <= 5; w++ {
			for _, team := range teams {
				if c := counts[teamWeek{team, w}]; c != 1 {
					t.Errorf("%s plays %d games in week %d, want 1", team, c, w)
				}
			}
		}
	})

	t.Run("every pair meets once", func(t *testing.T) {
		type pair struct{ a, b string }
		matchups := make(map[pair]int)
		for _, g := range games {
			a, b := g.Home, g.Away
			if a > b {
				a, b = b, a
			}
			matchups[pair{a, b}]++
		}
		if len(matchups) != 15 {
			t.Errorf("distinct matchups = %d, want 15", len(matchups))
		}
		for p, c := range matchups {
			if c != 1 {
				t.Errorf("%s vs %s = %d games, want 1", p.a, p.b, c)
			}
		}
	})

	t.Run("first week follows the circle method", func(t *testing.T) {
		want := []Game{
			{Week: 1, Home: "Ballers", Away: "Splashers", Label: "Game 1"},
			{Week: 1, Home: "Bricklayers", Away: "Swishers", Label: "Game 2"},
			{Week: 1, Home: "Dunkers", Away: "Hoopers", Label: "Game 3"},
		}
		for i, w := range want {
			if games[i] != w {
				t.Errorf("game %d = %+v, want %+v", i+1, games[i], w)
			}
		}
	})

	t.Run("fixed team is always home", func(t *testing.T) {
		for _, g := range games {
			if g.Away == "Ballers" {
				t.Errorf("%s: Ballers away in week %d", g.Label, g.Week)
			}
		}
	})

	t.Run("each game has a unique label", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, g := range games {
			if g.Label == "" {
				t.Error("game has empty label")
			}
			if seen[g.Label] {
				t.Errorf("duplicate label: %s", g.Label)
			}
			seen[g.Label] = true
		}
	})
}

func TestBalancedRoundRobin(t *testing.T) {
	s := &RoundRobin{Balanced: true}
	teams := testTeams()
	n := len(teams)

	t.Run("two cycles are exactly balanced", func(t *testing.T) {
		games, err := s.GenerateMatchups(teams, 2*(n-1))
		if err != nil {
			t.Fatalf("GenerateMatchups() error: %v", err)
		}
		home := make(map[string]int)
		away := make(map[string]int)
		for _, g := range games {
			home[g.Home]++
			away[g.Away]++
		}
		for _, team := range teams {
			if home[team] != n-1 || away[team] != n-1 {
				t.Errorf("%s: %d home, %d away, want %d each", team, home[team], away[team], n-1)
			}
		}
	})

	t.Run("second cycle mirrors the first", func(t *testing.T) {
		games, err := s.GenerateMatchups(teams, 2*(n-1))
		if err != nil {
			t.Fatalf("GenerateMatchups() error: %v", err)
		}
		perCycle := len(games) / 2
		for i := 0; i < perCycle; i++ {
			a, b := games[i], games[i+perCycle]
			if a.Home != b.Away || a.Away != b.Home {
				t.Errorf("%s (%s @ %s) not mirrored by %s (%s @ %s)",
					a.Label, a.Away, a.Home, b.Label, b.Away, b.Home)
			}
		}
	})

	t.Run("fixed team alternates", func(t *testing.T) {
		games, err := s.GenerateMatchups(teams, n-1)
		if err != nil {
			t.Fatalf("GenerateMatchups() error: %v", err)
		}
		for _, g := range games {
			if g.Home != "Ballers" && g.Away != "Ballers" {
				continue
			}
			wantHome := g.Week%2 == 1
			if (g.Home == "Ballers") != wantHome {
				t.Errorf("week %d: Ballers home = %v, want %v", g.Week, g.Home == "Ballers", wantHome)
			}
		}
	})
}

func TestRoundRobinInvalidLeague(t *testing.T) {
	s := &RoundRobin{}

	_, err := s.GenerateMatchups([]string{"A", "B", "C"}, 3)
	if !errors.Is(err, roundrobin.ErrUnsupportedSize) {
		t.Errorf("odd league error = %v, want ErrUnsupportedSize", err)
	}

	_, err = s.GenerateMatchups([]string{"A", "B"}, 0)
	if !errors.Is(err, roundrobin.ErrRounds) {
		t.Errorf("zero weeks error = %v, want ErrRounds", err)
	}
}
