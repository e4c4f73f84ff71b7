// Package workbook reads roster spreadsheets and writes result workbooks.
// Excel files go through excelize; plain CSV is handled as a fallback for
// rosters exported from other tools.
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

// Required source columns, matched case-insensitively against the header row.
var requiredColumns = []string{"Selected", "Name", "Rank", "Position"}

// Read loads roster records from path, dispatching on the file extension.
// Anything that is not .csv is treated as an Excel workbook.
func Read(path string) ([]roster.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSV(path)
	}
	return readExcel(path)
}

func readExcel(path string) ([]roster.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	return rowsToRecords(rows)
}

func readCSV(path string) ([]roster.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated; cells default blank
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	return rowsToRecords(rows)
}

// rowsToRecords maps a header row plus data rows onto roster records. The
// header must contain every required column; extra columns are ignored.
func rowsToRecords(rows [][]string) ([]roster.Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	cell := func(row []string, column string) string {
		i := index[strings.ToLower(column)]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]roster.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, roster.Record{
			Selected: cell(row, "Selected"),
			Name:     cell(row, "Name"),
			Rank:     cell(row, "Rank"),
			Position: cell(row, "Position"),
		})
	}

	return records, nil
}
