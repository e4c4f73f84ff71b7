// Command gen-roster writes a synthetic roster spreadsheet for testing the
// balancer end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ianmperryman/hockey-team-selection/internal/adapters/workbook"
	"github.com/ianmperryman/hockey-team-selection/internal/rostergen"
)

func main() {
	var (
		output   = flag.String("output", "roster.xlsx", "output path (.xlsx or .csv)")
		players  = flag.Int("players", 20, "number of roster rows")
		minRank  = flag.Int("min-rank", 1, "minimum rank")
		maxRank  = flag.Int("max-rank", 10, "maximum rank")
		forward  = flag.Float64("forward-share", 0.5, "fraction of players listed as forwards")
		defence  = flag.Float64("defence-share", 0.3, "fraction of players listed as defence (remainder is flex)")
		selected = flag.Float64("selected-share", 0.9, "fraction of rows marked Selected")
		seed     = flag.Int64("seed", 0, "random seed (0 means non-deterministic)")
	)
	flag.Parse()

	opts := []rostergen.Option{
		rostergen.WithPlayers(*players),
		rostergen.WithRankRange(*minRank, *maxRank),
		rostergen.WithRoleMix(*forward, *defence),
		rostergen.WithSelectedShare(*selected),
	}
	if *seed != 0 {
		opts = append(opts, rostergen.WithSeed(*seed))
	}

	records := rostergen.New(opts...).Generate()
	if err := workbook.WriteRoster(*output, records); err != nil {
		fmt.Fprintln(os.Stderr, "write roster failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d roster rows to %s\n", len(records), *output)
}
