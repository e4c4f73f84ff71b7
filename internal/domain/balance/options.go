package balance

import (
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
)

// Option applies a configuration option to the Searcher.
type Option func(*Searcher)

// WithTargets sets the per-team positional composition.
func WithTargets(t placement.Targets) Option {
	return func(s *Searcher) {
		if t.Forwards > 0 && t.Defence > 0 {
			s.targets = t
		}
	}
}

// WithIterations sets the number of randomized attempts per search.
func WithIterations(n int) Option {
	return func(s *Searcher) {
		s.iterations = n
	}
}

// WithEarlyStopDiff sets the skill gap at which the search stops early.
// The default of zero stops only on a perfect balance.
func WithEarlyStopDiff(d int) Option {
	return func(s *Searcher) {
		if d >= 0 {
			s.earlyStopDiff = d
		}
	}
}

// WithWorkers sets how many goroutines run attempts concurrently. With one
// worker the first best partition wins ties deterministically; with more,
// any minimal-diff partition may be returned.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithShuffle replaces the source of randomness. Tests inject a
// deterministic permutation here; production uses the default uniform
// shuffle. The function must be safe for concurrent use when combined with
// more than one worker.
func WithShuffle(fn func([]model.Player)) Option {
	return func(s *Searcher) {
		if fn != nil {
			s.shuffle = fn
		}
	}
}
