package workbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
)

// Default output naming, matching the club's traditional light/dark split.
const (
	defaultTeamAName   = "Light Team"
	defaultTeamBName   = "Dark Team"
	defaultTeamAJersey = "LIGHT"
	defaultTeamBJersey = "DARK"
	summarySheetName   = "Summary"
)

// Writer serializes a finished partition to a spreadsheet: one sheet per
// team plus a summary sheet with the totals and skill difference.
type Writer struct {
	teamAName   string
	teamBName   string
	teamAJersey string
	teamBJersey string
}

// NewWriter creates a Writer with configuration options.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		teamAName:   defaultTeamAName,
		teamBName:   defaultTeamBName,
		teamAJersey: defaultTeamAJersey,
		teamBJersey: defaultTeamBJersey,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write saves the partition to path. A .csv extension produces a single
// flat table (team rows followed by the summary); anything else produces an
// Excel workbook.
func (w *Writer) Write(path string, part model.Partition) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return w.writeCSV(path, part)
	}
	return w.writeExcel(path, part)
}

func (w *Writer) writeExcel(path string, part model.Partition) error {
	f := excelize.NewFile()
	defer f.Close()

	// Reuse the default sheet for team A, then add the rest.
	if err := f.SetSheetName("Sheet1", w.teamAName); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := f.NewSheet(w.teamBName); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := f.NewSheet(summarySheetName); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := w.writeTeamSheet(f, w.teamAName, part.TeamA, w.teamAJersey); err != nil {
		return err
	}
	if err := w.writeTeamSheet(f, w.teamBName, part.TeamB, w.teamBJersey); err != nil {
		return err
	}
	if err := w.writeSummarySheet(f, part); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

func (w *Writer) writeTeamSheet(f *excelize.File, sheet string, team *model.TeamState, jersey string) error {
	rows := teamRows(team, jersey)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	return nil
}

func (w *Writer) writeSummarySheet(f *excelize.File, part model.Partition) error {
	rows := summaryRows(w.teamAName, w.teamBName, part)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if err := f.SetSheetRow(summarySheetName, cell, &row); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	return nil
}

func (w *Writer) writeCSV(path string, part model.Partition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	write := func(fields ...string) {
		_ = cw.Write(fields)
	}

	write("Name", "Rank", "Position", "Jersey")
	for _, team := range []struct {
		state  *model.TeamState
		jersey string
	}{
		{part.TeamA, w.teamAJersey},
		{part.TeamB, w.teamBJersey},
	} {
		for _, row := range teamRows(team.state, team.jersey)[1:] {
			write(fmt.Sprint(row[0]), fmt.Sprint(row[1]), fmt.Sprint(row[2]), fmt.Sprint(row[3]))
		}
	}

	write()
	write("Metric", "Value")
	for _, row := range summaryRows(w.teamAName, w.teamBName, part)[1:] {
		write(fmt.Sprint(row[0]), fmt.Sprint(row[1]))
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// teamRows renders one team as header plus member rows, forwards first.
// The Position column reflects the slot the player landed in, not the role
// they were listed with, so a flex player shows up as F or D.
func teamRows(team *model.TeamState, jersey string) [][]interface{} {
	rows := make([][]interface{}, 0, team.Size()+1)
	rows = append(rows, []interface{}{"Name", "Rank", "Position", "Jersey"})
	for _, p := range team.Forwards {
		rows = append(rows, []interface{}{p.Name, p.Rank, string(model.RoleForward), jersey})
	}
	for _, p := range team.Defence {
		rows = append(rows, []interface{}{p.Name, p.Rank, string(model.RoleDefence), jersey})
	}
	return rows
}

func summaryRows(teamAName, teamBName string, part model.Partition) [][]interface{} {
	return [][]interface{}{
		{"Metric", "Value"},
		{teamAName + " Total Rank", part.TeamA.Total},
		{teamBName + " Total Rank", part.TeamB.Total},
		{"Skill Difference", part.Diff},
		{"Overflow Placements", part.Overflows},
	}
}
