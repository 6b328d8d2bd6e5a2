package roundrobin

import (
	"fmt"
	"slices"
)

// DefaultMaxRounds bounds the rounds a Scheduler computes.
const DefaultMaxRounds = 1000

var defaultScheduler = New()

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithSizes replaces the allow-list with the given sizes. Sizes below 2 are
// ignored.
func WithSizes(sizes ...int) Option {
	return func(s *Scheduler) {
		s.sizes = s.sizes[:0]
		for _, size := range sizes {
			if size >= 2 && !slices.Contains(s.sizes, size) {
				s.sizes = append(s.sizes, size)
			}
		}
		slices.Sort(s.sizes)
	}
}

// WithMaxSize allows every even size from 2 through limit.
func WithMaxSize(limit int) Option {
	return func(s *Scheduler) {
		s.sizes = s.sizes[:0]
		for size := 2; size <= limit; size += 2 {
			s.sizes = append(s.sizes, size)
		}
	}
}

// WithMaxRounds sets the largest round count Compute accepts.
func WithMaxRounds(limit int) Option {
	return func(s *Scheduler) {
		s.maxRounds = limit
	}
}

// Scheduler computes schedules against a configurable allow-list of league
// sizes. The zero value allows nothing; use New.
type Scheduler struct {
	sizes     []int
	maxRounds int
}

// New returns a Scheduler using the default allow-list unless overridden.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{sizes: SupportedSizes(), maxRounds: DefaultMaxRounds}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sizes returns the allowed league sizes in ascending order.
func (s *Scheduler) Sizes() []int {
	return slices.Clone(s.sizes)
}

// IsValidSize reports whether size is in this scheduler's allow-list.
func (s *Scheduler) IsValidSize(size int) bool {
	return slices.Contains(s.sizes, size)
}

// Compute validates its inputs and returns the circle-method schedule.
// Errors wrap ErrLeagueSize, ErrRounds or ErrUnsupportedSize.
func (s *Scheduler) Compute(leagueSize, rounds int) (Schedule, error) {
	if leagueSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrLeagueSize, leagueSize)
	}
	if rounds < 1 || rounds > s.maxRounds {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrRounds, rounds, s.maxRounds)
	}
	if !s.IsValidSize(leagueSize) {
		return nil, fmt.Errorf("%w: %d (allowed %v)", ErrUnsupportedSize, leagueSize, s.sizes)
	}
	return circle(leagueSize, rounds), nil
}
