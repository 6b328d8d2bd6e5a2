package excel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fantasyball/hoops/internal/config"
	"github.com/fantasyball/hoops/internal/schedule"
	"github.com/fantasyball/hoops/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const (
	MasterSheet  = config.MasterSheet
	ScoringSheet = config.ScoringSheet

	dateFormat   = "01/02/2006"
	playoffLabel = "Playoffs"
)

// Generate creates an Excel workbook with the master schedule, per-team
// sheets and the scoring reference sheet. weeks should include playoff weeks.
func Generate(cfg *config.Config, result *schedule.Result, weeks []schedule.Week, blackouts []schedule.BlackoutWeek) (*excelize.File, error) {
	f := excelize.NewFile()

	// Set default font for the workbook
	f.SetDefaultFont("Arial")

	if err := writeMasterSheet(f, cfg, result, weeks, blackouts); err != nil {
		return nil, fmt.Errorf("writing master sheet: %w", err)
	}

	if err := writeTeamSheets(f, cfg, result.Assignments); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	if err := writeScoringSheet(f); err != nil {
		return nil, fmt.Errorf("writing scoring sheet: %w", err)
	}

	f.DeleteSheet(config.DefaultSheet)
	return f, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 16, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return style
}

func writeHeaders(f *excelize.File, sheet string, col int, headers []string) {
	style := headerStyle(f)
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(col+i, 1), h)
		if style != 0 {
			f.SetCellStyle(sheet, cellRef(col+i, 1), cellRef(col+i, 1), style)
		}
	}
}

func writeMasterSheet(f *excelize.File, cfg *config.Config, result *schedule.Result, weeks []schedule.Week, blackouts []schedule.BlackoutWeek) error {
	sheet := MasterSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	matchupsPerWeek := len(cfg.League.Teams) / 2

	// Headers: Week, Start, End, Matchup 1, Matchup 2, ...
	headers := []string{"Week", "Start", "End"}
	for i := 0; i < matchupsPerWeek; i++ {
		headers = append(headers, fmt.Sprintf("Matchup %d", i+1))
	}
	writeHeaders(f, sheet, 1, headers)

	cellStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 16, Family: "Arial"},
	})

	matchupCellStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	// Games per week, in assignment order
	byWeek := make(map[int][]schedule.Assignment)
	for _, a := range result.Assignments {
		byWeek[a.Week.Number] = append(byWeek[a.Week.Number], a)
	}

	type row struct {
		start   time.Time
		end     time.Time
		week    string
		cells   []string
		fillAll string
	}
	var rows []row
	for _, w := range weeks {
		r := row{start: w.Start, end: w.End, week: strconv.Itoa(w.Number)}
		if w.Playoff {
			r.fillAll = playoffLabel
		} else {
			for _, a := range byWeek[w.Number] {
				r.cells = append(r.cells, fmt.Sprintf("%s @ %s", a.Game.Away, a.Game.Home))
			}
		}
		rows = append(rows, r)
	}
	for _, b := range blackouts {
		rows = append(rows, row{start: b.Start, end: b.End, fillAll: b.Reason})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].start.Before(rows[j].start)
	})

	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, cellRef(1, rowNum), r.week)
		f.SetCellValue(sheet, cellRef(2, rowNum), r.start.Format(dateFormat))
		f.SetCellValue(sheet, cellRef(3, rowNum), r.end.Format(dateFormat))
		for c := 0; c < matchupsPerWeek; c++ {
			col := c + 4 // 1-indexed, after Week/Start/End
			switch {
			case r.fillAll != "":
				f.SetCellValue(sheet, cellRef(col, rowNum), r.fillAll)
			case c < len(r.cells):
				f.SetCellValue(sheet, cellRef(col, rowNum), r.cells[c])
			}
		}

		if cellStyle != 0 {
			for col := 1; col <= 3; col++ {
				f.SetCellStyle(sheet, cellRef(col, rowNum), cellRef(col, rowNum), cellStyle)
			}
			for col := 4; col <= len(headers); col++ {
				f.SetCellStyle(sheet, cellRef(col, rowNum), cellRef(col, rowNum), matchupCellStyle)
			}
		}
	}

	// Set column widths (sized for Arial 16)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "C", 18)
	for i := 0; i < matchupsPerWeek; i++ {
		col := colLetter(i + 4)
		f.SetColWidth(sheet, col, col, 36)
	}

	// Conditional formatting: non-game cells in matchup columns get light red
	lastRow := len(rows) + 1
	redFill, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFC7CE"}},
		Font: &excelize.Font{Size: 16, Family: "Arial"},
	})
	for i := 0; i < matchupsPerWeek; i++ {
		col := colLetter(i + 4)
		cellRange := fmt.Sprintf("%s2:%s%d", col, col, lastRow)
		topCell := fmt.Sprintf("%s2", col)
		formula := fmt.Sprintf(`AND(%s<>"",ISERROR(FIND(" @ ",%s)))`, topCell, topCell)
		f.SetConditionalFormat(sheet, cellRange, []excelize.ConditionalFormatOptions{
			{
				Type:     "formula",
				Criteria: formula,
				Format:   &redFill,
			},
		})
	}

	return nil
}

func isReservedSheet(name string) bool {
	for _, reserved := range []string{MasterSheet, ScoringSheet, config.DefaultSheet} {
		if strings.EqualFold(name, reserved) {
			return true
		}
	}
	return false
}

func writeTeamSheets(f *excelize.File, cfg *config.Config, assignments []schedule.Assignment) error {
	for _, team := range cfg.AllTeams() {
		sheet := team
		if isReservedSheet(sheet) {
			return fmt.Errorf("team name %q collides with a reserved sheet", team)
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}

		headers := []string{"Week", "Start", "Opponent", "Home/Away", "Game"}
		writeHeaders(f, sheet, 1, headers)

		// Collect and sort this team's games
		type teamGame struct {
			week     int
			start    time.Time
			opponent string
			homeAway string
			label    string
		}
		var games []teamGame
		for _, a := range assignments {
			if a.Game.Home == team {
				games = append(games, teamGame{
					week: a.Week.Number, start: a.Week.Start,
					opponent: a.Game.Away, homeAway: "Home", label: a.Game.Label,
				})
			} else if a.Game.Away == team {
				games = append(games, teamGame{
					week: a.Week.Number, start: a.Week.Start,
					opponent: a.Game.Home, homeAway: "Away", label: a.Game.Label,
				})
			}
		}
		sort.Slice(games, func(i, j int) bool {
			return games[i].week < games[j].week
		})

		cellStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Size: 16, Family: "Arial"},
		})

		for i, g := range games {
			row := i + 2
			f.SetCellValue(sheet, cellRef(1, row), g.week)
			f.SetCellValue(sheet, cellRef(2, row), g.start.Format(dateFormat))
			f.SetCellValue(sheet, cellRef(3, row), g.opponent)
			f.SetCellValue(sheet, cellRef(4, row), g.homeAway)
			f.SetCellValue(sheet, cellRef(5, row), g.label)
			if cellStyle != 0 {
				for col := 1; col <= len(headers); col++ {
					f.SetCellStyle(sheet, cellRef(col, row), cellRef(col, row), cellStyle)
				}
			}
		}

		// Lineup template to the right of the schedule
		writeHeaders(f, sheet, 7, []string{"Slot", "Player"})
		for i, pos := range config.LineupPositions() {
			f.SetCellValue(sheet, cellRef(7, i+2), pos)
		}

		// Set column widths (sized for Arial 16)
		widths := map[string]float64{"A": 8, "B": 18, "C": 20, "D": 14, "E": 14, "G": 10, "H": 28}
		for col, w := range widths {
			f.SetColWidth(sheet, col, col, w)
		}
	}

	return nil
}

func writeScoringSheet(f *excelize.File) error {
	sheet := ScoringSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	writeHeaders(f, sheet, 1, []string{"Category", "Weight"})
	for i, c := range scoring.HeadToHeadCategories() {
		f.SetCellValue(sheet, cellRef(1, i+2), c.Name)
		f.SetCellValue(sheet, cellRef(2, i+2), c.Weight)
	}

	writeHeaders(f, sheet, 4, []string{"Stat", "Name", "Lower Wins"})
	for i, c := range scoring.CategoryStats() {
		f.SetCellValue(sheet, cellRef(4, i+2), c.Abbrev)
		f.SetCellValue(sheet, cellRef(5, i+2), c.Name)
		if c.LowerIsBest {
			f.SetCellValue(sheet, cellRef(6, i+2), "yes")
		}
	}

	f.SetColWidth(sheet, "A", "B", 14)
	f.SetColWidth(sheet, "D", "D", 10)
	f.SetColWidth(sheet, "E", "E", 26)
	f.SetColWidth(sheet, "F", "F", 14)
	return nil
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
