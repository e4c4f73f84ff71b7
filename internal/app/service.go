// Package app provides the core business service that implements the
// dependencies required by the HTTP API and the CLI entrypoints.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ianmperryman/hockey-team-selection/internal/adapters/workbook"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/balance"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
	"github.com/ianmperryman/hockey-team-selection/internal/roster"
	"github.com/ianmperryman/hockey-team-selection/pkg/logger"
	"github.com/ianmperryman/hockey-team-selection/pkg/metrics"
)

// Result is one completed balancing run.
type Result struct {
	RunID     string
	Partition model.Partition
	Players   int
	Attempts  int
	Duration  time.Duration
}

// Service runs the roster-to-partition pipeline: parse records, search for
// the best split, hand the winner to an exporter.
type Service struct {
	mu sync.RWMutex

	targets       placement.Targets
	iterations    int
	earlyStopDiff int
	workers       int

	teamAName   string
	teamBName   string
	teamAJersey string
	teamBJersey string

	searcher *balance.Searcher
	logger   logger.Logger

	// Stats of the most recent run
	runs          int64
	lastRunID     string
	lastDiff      int
	lastOverflows int
	lastAttempts  int
	lastDuration  time.Duration
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		targets:       placement.DefaultTargets(),
		iterations:    balance.DefaultIterations,
		earlyStopDiff: 0,
		workers:       1,
		teamAName:     "Light Team",
		teamBName:     "Dark Team",
		teamAJersey:   "LIGHT",
		teamBJersey:   "DARK",
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}

	s.searcher = balance.New(
		balance.WithTargets(s.targets),
		balance.WithIterations(s.iterations),
		balance.WithEarlyStopDiff(s.earlyStopDiff),
		balance.WithWorkers(s.workers),
	)

	return s
}

// Balance parses raw roster records and searches for the best partition.
// Validation failures (missing data, too few eligible players) surface
// before any attempt runs; a complete run always yields a full partition.
func (s *Service) Balance(ctx context.Context, records []roster.Record) (Result, error) {
	players, err := roster.Build(records)
	if err != nil {
		metrics.RecordSearchError()
		return Result{}, fmt.Errorf("build roster: %w", err)
	}
	metrics.RecordRosterLoaded()
	metrics.UpdateEligiblePlayers(len(players))

	runID := uuid.NewString()
	s.logger.Info(ctx, "starting balance run",
		logger.String("runID", runID),
		logger.Int("players", len(players)),
		logger.Int("iterations", s.iterations),
		logger.Int("workers", s.workers),
	)

	start := time.Now()
	res, err := s.searcher.Search(ctx, players)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordSearchError()
		return Result{}, fmt.Errorf("search: %w", err)
	}

	metrics.RecordSearch()
	metrics.RecordSearchAttempts(res.Attempts)
	metrics.RecordSearchDuration(float64(elapsed.Milliseconds()))
	metrics.UpdateBestSkillDiff(res.Diff)
	metrics.RecordFallbackPlacements(res.Overflows)

	s.logger.Info(ctx, "balance run complete",
		logger.String("runID", runID),
		logger.Int("skillDiff", res.Diff),
		logger.Int("attempts", res.Attempts),
		logger.Int("totalA", res.TeamA.Total),
		logger.Int("totalB", res.TeamB.Total),
	)
	if res.Overflows > 0 {
		// The roster's role mix could not satisfy the configured targets.
		s.logger.Warn(ctx, "fallback placements used",
			logger.String("runID", runID),
			logger.Int("overflows", res.Overflows),
		)
	}

	s.mu.Lock()
	s.runs++
	s.lastRunID = runID
	s.lastDiff = res.Diff
	s.lastOverflows = res.Overflows
	s.lastAttempts = res.Attempts
	s.lastDuration = elapsed
	s.mu.Unlock()

	return Result{
		RunID:     runID,
		Partition: res.Partition,
		Players:   len(players),
		Attempts:  res.Attempts,
		Duration:  elapsed,
	}, nil
}

// BalanceFile reads a roster spreadsheet, balances it and writes the result
// workbook. It is the file-based trigger used by the CLI.
func (s *Service) BalanceFile(ctx context.Context, inputPath, outputPath string) (Result, error) {
	records, err := workbook.Read(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("read roster: %w", err)
	}

	result, err := s.Balance(ctx, records)
	if err != nil {
		return Result{}, err
	}

	writer := workbook.NewWriter(
		workbook.WithTeamNames(s.teamAName, s.teamBName),
		workbook.WithJerseys(s.teamAJersey, s.teamBJersey),
	)
	if err := writer.Write(outputPath, result.Partition); err != nil {
		return Result{}, fmt.Errorf("write result: %w", err)
	}
	metrics.RecordWorkbookWritten()

	s.logger.Info(ctx, "result workbook written",
		logger.String("runID", result.RunID),
		logger.String("path", outputPath),
	)
	return result, nil
}

// TeamNames returns the configured display names for the two teams.
func (s *Service) TeamNames() (string, string) {
	return s.teamAName, s.teamBName
}

// Stats returns a snapshot of service counters for monitoring.
func (s *Service) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"runs":           s.runs,
		"lastRunID":      s.lastRunID,
		"lastSkillDiff":  s.lastDiff,
		"lastOverflows":  s.lastOverflows,
		"lastAttempts":   s.lastAttempts,
		"lastDurationMs": s.lastDuration.Milliseconds(),
		"iterations":     s.iterations,
		"workers":        s.workers,
		"forwardsTarget": s.targets.Forwards,
		"defenceTarget":  s.targets.Defence,
	}
}
