package workbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ianmperryman/hockey-team-selection/internal/roster"
)

const rosterSheetName = "Roster"

// WriteRoster saves raw roster records to path in the input schema the
// reader expects. Used by the synthetic roster tool and tests.
func WriteRoster(path string, records []roster.Record) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return writeRosterCSV(path, records)
	}
	return writeRosterExcel(path, records)
}

func writeRosterExcel(path string, records []roster.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheetName); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	rows := make([][]interface{}, 0, len(records)+1)
	rows = append(rows, []interface{}{"Selected", "Name", "Rank", "Position"})
	for _, rec := range records {
		rows = append(rows, []interface{}{rec.Selected, rec.Name, rec.Rank, rec.Position})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		if err := f.SetSheetRow(rosterSheetName, cell, &row); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

func writeRosterCSV(path string, records []roster.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	_ = cw.Write([]string{"Selected", "Name", "Rank", "Position"})
	for _, rec := range records {
		_ = cw.Write([]string{rec.Selected, rec.Name, rec.Rank, rec.Position})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}
