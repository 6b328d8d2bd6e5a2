// Package roundrobin builds round-robin pairing schedules with the circle
// method: participant 0 stays fixed while the others rotate one seat per
// round.
package roundrobin

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrLeagueSize      = errors.New("league size must be at least 2")
	ErrRounds          = errors.New("rounds out of range")
	ErrUnsupportedSize = errors.New("unsupported league size")
)

// supportedSizes is the default allow-list of league sizes.
var supportedSizes = [...]int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}

// Pairing is one matchup within a round. First and Second are participant
// indices; their order is fixed by the algorithm and is not symmetric.
type Pairing struct {
	First  int
	Second int
}

func (p Pairing) String() string {
	return fmt.Sprintf("(%d,%d)", p.First, p.Second)
}

// Involves reports whether participant i plays in this pairing.
func (p Pairing) Involves(i int) bool {
	return p.First == i || p.Second == i
}

// Round is the set of pairings played at the same time.
type Round []Pairing

// Check returns an error unless the round pairs every participant in
// [0, n) exactly once.
func (r Round) Check(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrLeagueSize, n)
	}
	if len(r) != n/2 {
		return fmt.Errorf("round has %d pairings, want %d", len(r), n/2)
	}
	seen := make([]bool, n)
	for _, p := range r {
		for _, i := range []int{p.First, p.Second} {
			if i < 0 || i >= n {
				return fmt.Errorf("participant %d out of range [0, %d)", i, n)
			}
			if seen[i] {
				return fmt.Errorf("participant %d paired more than once", i)
			}
			seen[i] = true
		}
	}
	if n%2 == 0 {
		for i, ok := range seen {
			if !ok {
				return fmt.Errorf("participant %d has no pairing", i)
			}
		}
	}
	return nil
}

// Schedule is an ordered sequence of rounds.
type Schedule []Round

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for i, r := range s {
		out[i] = slices.Clone(r)
	}
	return out
}

// SupportedSizes returns the default allow-list of league sizes.
func SupportedSizes() []int {
	return slices.Clone(supportedSizes[:])
}

// IsValidSize reports whether size is in the default allow-list.
func IsValidSize(size int) bool {
	return slices.Contains(supportedSizes[:], size)
}

// ComputeMatchups returns rounds pairings for leagueSize participants.
// Inputs with leagueSize < 2 or rounds < 1 yield an empty schedule. The
// allow-list is not consulted; callers validate with IsValidSize first.
// Every round is allocated up front, so untrusted round counts should go
// through Compute, which enforces DefaultMaxRounds.
//
// Example, leagueSize=4, rounds=4:
//
//	Round 1: (0,3) (1,2)
//	Round 2: (0,1) (2,3)
//	Round 3: (0,2) (3,1)
//	Round 4: (0,3) (1,2)   repeats round 1
func ComputeMatchups(leagueSize, rounds int) Schedule {
	if leagueSize < 2 || rounds < 1 {
		return nil
	}
	return circle(leagueSize, rounds)
}

// Compute is ComputeMatchups with explicit errors, using the default
// allow-list.
func Compute(leagueSize, rounds int) (Schedule, error) {
	return defaultScheduler.Compute(leagueSize, rounds)
}

func circle(n, rounds int) Schedule {
	half := n / 2
	distinct := min(n-1, rounds)

	// Everyone but participant 0.
	rotating := make([]int, n-1)
	for i := range rotating {
		rotating[i] = i + 1
	}

	sched := make(Schedule, 0, rounds)
	ordering := make([]int, n)
	for r := 0; r < distinct; r++ {
		ordering[0] = 0
		copy(ordering[1:], rotating)

		// Second half is read back to front.
		round := make(Round, half)
		for i := 0; i < half; i++ {
			round[i] = Pairing{First: ordering[i], Second: ordering[n-1-i]}
		}
		sched = append(sched, round)

		first := rotating[0]
		copy(rotating, rotating[1:])
		rotating[len(rotating)-1] = first
	}

	// Past n-1 rounds every pairing repeats; cycle what we have.
	for i := 0; i < rounds-distinct; i++ {
		sched = append(sched, slices.Clone(sched[i%distinct]))
	}
	return sched
}
