// Package roster turns raw spreadsheet rows into the eligible player list
// consumed by the partition search.
package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/balance"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
)

// Record is one raw roster row. All fields arrive as strings; spreadsheet
// and JSON adapters do no interpretation of their own.
type Record struct {
	Selected string `json:"selected"`
	Name     string `json:"name"`
	Rank     string `json:"rank"`
	Position string `json:"position"`
}

// IsSelected reports whether a Selected cell marks the row eligible.
// Truthy values are TRUE, 1, YES and Y, case-insensitive and trimmed;
// anything else, including blank, is false.
func IsSelected(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "TRUE", "1", "YES", "Y":
		return true
	default:
		return false
	}
}

// Build filters records to the selected rows and parses them into players.
// A selected row with a non-numeric rank fails the whole build; fewer than
// the minimum viable roster after filtering fails with
// balance.ErrInsufficientPlayers.
func Build(records []Record) ([]model.Player, error) {
	players := make([]model.Player, 0, len(records))

	for i, rec := range records {
		if !IsSelected(rec.Selected) {
			continue
		}

		rank, err := parseRank(rec.Rank)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, strings.TrimSpace(rec.Name), err)
		}

		players = append(players, model.Player{
			Name: strings.TrimSpace(rec.Name),
			Rank: rank,
			Role: model.ParseRole(rec.Position),
		})
	}

	if len(players) < balance.MinEligiblePlayers {
		return nil, fmt.Errorf("%w: have %d, need at least %d",
			balance.ErrInsufficientPlayers, len(players), balance.MinEligiblePlayers)
	}

	return players, nil
}

// parseRank coerces a rank cell to an integer. Spreadsheets routinely hand
// back whole numbers as floats, so "7.0" parses as 7 (fractions truncate,
// matching integer coercion of the source data).
func parseRank(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidRank)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, raw)
}
