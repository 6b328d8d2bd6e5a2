package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fantasyball/hoops/internal/config"
	"github.com/fantasyball/hoops/internal/schedule"
	"github.com/fantasyball/hoops/internal/strategy"
	"github.com/xuri/excelize/v2"
)

// MasterGame is a game read back from the master sheet.
type MasterGame struct {
	Row    int
	Column int
	schedule.Assignment
}

// ReadMasterSchedule parses the games on the master sheet. Cells that are
// not "Away @ Home" (blackouts, playoffs, blanks) are skipped. Games are
// labelled in sheet order.
func ReadMasterSchedule(f *excelize.File) ([]MasterGame, error) {
	rows, err := f.GetRows(MasterSheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", MasterSheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", MasterSheet)
	}

	var games []MasterGame
	gameNum := 1
	for i, row := range rows {
		if i == 0 || len(row) < 3 || row[0] == "" {
			continue
		}

		number, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}
		start, err := time.Parse(dateFormat, row[1])
		if err != nil {
			continue
		}
		end, err := time.Parse(dateFormat, row[2])
		if err != nil {
			continue
		}
		week := schedule.Week{Number: number, Start: start, End: end}

		for col := 3; col < len(row); col++ {
			cell := row[col]
			if cell == playoffLabel {
				week.Playoff = true
				continue
			}
			away, home, ok := ParseGameCell(cell)
			if !ok {
				continue
			}
			games = append(games, MasterGame{
				Row:    i + 1,
				Column: col + 1,
				Assignment: schedule.Assignment{
					Game: strategy.Game{
						Week:  number,
						Home:  home,
						Away:  away,
						Label: fmt.Sprintf("Game %d", gameNum),
					},
					Week: week,
				},
			})
			gameNum++
		}
	}

	return games, nil
}

// ParseGameCell parses "Away @ Home" and returns (away, home, true).
// Returns ("", "", false) if the cell doesn't match the game format.
func ParseGameCell(cell string) (away, home string, ok bool) {
	away, home, ok = strings.Cut(cell, " @ ")
	if !ok || away == "" || home == "" {
		return "", "", false
	}
	return away, home, true
}

// UpdateTeamSheets rebuilds every team sheet from the master sheet of the
// workbook at path, so manual edits to the master schedule carry over.
func UpdateTeamSheets(path string, cfg *config.Config) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	games, err := ReadMasterSchedule(f)
	if err != nil {
		return err
	}
	assignments := make([]schedule.Assignment, len(games))
	for i, g := range games {
		assignments[i] = g.Assignment
	}

	for _, team := range cfg.AllTeams() {
		if idx, err := f.GetSheetIndex(team); err == nil && idx >= 0 {
			if err := f.DeleteSheet(team); err != nil {
				return fmt.Errorf("removing sheet %q: %w", team, err)
			}
		}
	}

	if err := writeTeamSheets(f, cfg, assignments); err != nil {
		return fmt.Errorf("writing team sheets: %w", err)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}
	return nil
}
