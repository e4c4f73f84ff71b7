package balance

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
)

// Default search configuration constants.
const (
	// MinEligiblePlayers is the minimum viable roster size.
	MinEligiblePlayers = 10

	// DefaultIterations is the number of randomized attempts per search.
	DefaultIterations = 7000
)

// Searcher runs the best-of-N randomized partition search. Searchers are
// stateless between calls; the same Searcher may be used for many rosters.
type Searcher struct {
	targets       placement.Targets
	iterations    int
	earlyStopDiff int
	workers       int
	shuffle       func([]model.Player)
}

// Result is the outcome of one search call.
type Result struct {
	model.Partition

	// Attempts is the number of constructive passes actually executed,
	// which is below the configured iterations when the search stops early.
	Attempts int
}

// New creates a Searcher with configuration options.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		targets:       placement.DefaultTargets(),
		iterations:    DefaultIterations,
		earlyStopDiff: 0,
		workers:       1,
		shuffle: func(players []model.Player) {
			rand.Shuffle(len(players), func(i, j int) {
				players[i], players[j] = players[j], players[i]
			})
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Search partitions players into two teams, minimizing the skill gap over
// repeated randomized greedy attempts. The input slice is never mutated;
// every attempt shuffles its own copy. Fewer than MinEligiblePlayers is an
// input error surfaced before any attempt runs.
func (s *Searcher) Search(ctx context.Context, players []model.Player) (Result, error) {
	if len(players) < MinEligiblePlayers {
		return Result{}, fmt.Errorf("%w: have %d, need at least %d",
			ErrInsufficientPlayers, len(players), MinEligiblePlayers)
	}
	if s.iterations < 1 {
		return Result{}, ErrNoAttempts
	}

	if s.workers > 1 {
		return s.searchParallel(ctx, players)
	}
	return s.searchSequential(ctx, players)
}

// searchSequential is the deterministic-tie-break path: the first partition
// to reach the running best diff is kept, later equal-diff attempts never
// replace it.
func (s *Searcher) searchSequential(ctx context.Context, players []model.Player) (Result, error) {
	order := make([]model.Player, len(players))

	var best model.Partition
	bestDiff := math.MaxInt
	attempts := 0

	for i := 0; i < s.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("search cancelled: %w", err)
		}

		copy(order, players)
		s.shuffle(order)

		part := buildPartition(order, s.targets)
		attempts++

		if part.Diff < bestDiff {
			best = part
			bestDiff = part.Diff
			if bestDiff <= s.earlyStopDiff {
				break
			}
		}
	}

	return Result{Partition: best, Attempts: attempts}, nil
}

// searchParallel fans attempts out across workers. Each attempt owns a
// private player copy and TeamStates, so the only synchronization is the
// best-so-far reduction. Ties may resolve to any minimal-diff partition.
func (s *Searcher) searchParallel(ctx context.Context, players []model.Player) (Result, error) {
	var (
		mu       sync.Mutex
		best     model.Partition
		bestDiff = math.MaxInt

		attempts atomic.Int64
		stop     atomic.Bool
	)

	base := s.iterations / s.workers
	extra := s.iterations % s.workers

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		n := base
		if w < extra {
			n++
		}
		if n == 0 {
			continue
		}

		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			order := make([]model.Player, len(players))
			for i := 0; i < n; i++ {
				if stop.Load() || ctx.Err() != nil {
					return
				}

				copy(order, players)
				s.shuffle(order)

				part := buildPartition(order, s.targets)
				attempts.Add(1)

				mu.Lock()
				if part.Diff < bestDiff {
					best = part
					bestDiff = part.Diff
					if bestDiff <= s.earlyStopDiff {
						stop.Store(true)
					}
				}
				mu.Unlock()
			}
		}(n)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("search cancelled: %w", err)
	}

	return Result{Partition: best, Attempts: int(attempts.Load())}, nil
}
