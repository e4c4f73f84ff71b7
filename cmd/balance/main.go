// Command balance reads a roster spreadsheet, searches for the most even
// two-team split and writes the result workbook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ianmperryman/hockey-team-selection/internal/app"
	"github.com/ianmperryman/hockey-team-selection/internal/config"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/balance"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
	"github.com/ianmperryman/hockey-team-selection/pkg/logger"
)

func main() {
	var (
		input      = flag.String("input", "", "roster spreadsheet (.xlsx or .csv), required")
		output     = flag.String("output", "", "result workbook path (default from config)")
		iterations = flag.Int("iterations", 0, "randomized attempts (default from config)")
		forwards   = flag.Int("forwards", 0, "forwards per team (default from config)")
		defence    = flag.Int("defence", 0, "defence per team (default from config)")
		workers    = flag.Int("workers", 0, "concurrent attempt workers (default from config)")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	} else {
		_ = logger.SetLevelString("warn")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if *output == "" {
		*output = cfg.OutputFile
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *forwards > 0 {
		cfg.ForwardsTarget = *forwards
	}
	if *defence > 0 {
		cfg.DefenceTarget = *defence
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	svc := app.New(
		app.WithTargets(placement.Targets{Forwards: cfg.ForwardsTarget, Defence: cfg.DefenceTarget}),
		app.WithIterations(cfg.Iterations),
		app.WithEarlyStopDiff(cfg.EarlyStopDiff),
		app.WithWorkers(cfg.Workers),
		app.WithTeamNames(cfg.TeamAName, cfg.TeamBName),
		app.WithJerseys(cfg.TeamAJersey, cfg.TeamBJersey),
	)

	result, err := svc.BalanceFile(ctx, *input, *output)
	if err != nil {
		if errors.Is(err, balance.ErrInsufficientPlayers) {
			fmt.Fprintln(os.Stderr, "roster rejected:", err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "balance failed:", err)
		os.Exit(1)
	}

	part := result.Partition
	fmt.Printf("Teams created: %s\n", *output)
	fmt.Printf("  %s total rank: %d\n", cfg.TeamAName, part.TeamA.Total)
	fmt.Printf("  %s total rank: %d\n", cfg.TeamBName, part.TeamB.Total)
	fmt.Printf("  Skill difference: %d (in %d attempts, %s)\n", part.Diff, result.Attempts, result.Duration)
	if part.Overflows > 0 {
		fmt.Printf("  Warning: %d placements exceeded the position targets\n", part.Overflows)
	}
}
