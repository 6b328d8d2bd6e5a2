package schedule

import (
	"time"

	"github.com/fantasyball/hoops/internal/config"
)

// Week is a seven-day matchup window.
type Week struct {
	Number  int // matchup week number; playoff weeks continue the count
	Start   time.Time
	End     time.Time
	Playoff bool
}

// BlackoutWeek is a window skipped because it contains a blackout date.
type BlackoutWeek struct {
	Start  time.Time
	End    time.Time
	Reason string
}

// GenerateWeeks returns the regular season matchup weeks, skipping any
// window that contains a blackout date.
func GenerateWeeks(cfg *config.Config) []Week {
	regular, _, _ := calendar(cfg)
	return regular
}

// GeneratePlayoffWeeks returns the playoff weeks that follow the regular
// season.
func GeneratePlayoffWeeks(cfg *config.Config) []Week {
	_, playoffs, _ := calendar(cfg)
	return playoffs
}

// GenerateBlackoutWeeks returns the windows skipped between the season start
// and the last playoff week, for display on the master sheet.
func GenerateBlackoutWeeks(cfg *config.Config) []BlackoutWeek {
	_, _, blackouts := calendar(cfg)
	return blackouts
}

func calendar(cfg *config.Config) (regular, playoffs []Week, blackouts []BlackoutWeek) {
	regularWeeks := cfg.Season.RegularSeasonWeeks
	playoffWeeks := cfg.Season.Playoffs()

	number := 1
	start := cfg.Season.StartDate.Time
	for len(regular)+len(playoffs) < regularWeeks+playoffWeeks {
		end := start.AddDate(0, 0, 6)
		if reason, ok := blackoutIn(cfg, start, end); ok {
			blackouts = append(blackouts, BlackoutWeek{Start: start, End: end, Reason: reason})
			start = start.AddDate(0, 0, 7)
			continue
		}

		w := Week{Number: number, Start: start, End: end}
		if len(regular) < regularWeeks {
			regular = append(regular, w)
		} else {
			w.Playoff = true
			playoffs = append(playoffs, w)
		}
		number++
		start = start.AddDate(0, 0, 7)
	}
	return regular, playoffs, blackouts
}

// blackoutIn returns the reason of the first blackout date in [start, end].
func blackoutIn(cfg *config.Config, start, end time.Time) (string, bool) {
	for _, b := range cfg.Season.BlackoutWeeks {
		d := b.Date.Time
		if !d.Before(start) && !d.After(end) {
			return b.Reason, true
		}
	}
	return "", false
}

// WeeksApart returns the whole calendar weeks from a to b. Blackout weeks
// in between count toward the gap; it is not a count of matchup weeks.
func WeeksApart(a, b time.Time) int {
	return int(b.Sub(a).Hours() / (24 * 7))
}
