package app

import (
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
	"github.com/ianmperryman/hockey-team-selection/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTargets sets the per-team positional composition.
func WithTargets(t placement.Targets) Option {
	return func(s *Service) {
		if t.Forwards > 0 && t.Defence > 0 {
			s.targets = t
		}
	}
}

// WithIterations sets the number of randomized attempts per search.
func WithIterations(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.iterations = n
		}
	}
}

// WithEarlyStopDiff sets the skill gap at which searches stop early.
func WithEarlyStopDiff(d int) Option {
	return func(s *Service) {
		if d >= 0 {
			s.earlyStopDiff = d
		}
	}
}

// WithWorkers sets how many goroutines run attempts concurrently.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithTeamNames sets the display names used on exports.
func WithTeamNames(teamA, teamB string) Option {
	return func(s *Service) {
		if teamA != "" {
			s.teamAName = teamA
		}
		if teamB != "" {
			s.teamBName = teamB
		}
	}
}

// WithJerseys sets the jersey labels used on exports.
func WithJerseys(teamA, teamB string) Option {
	return func(s *Service) {
		if teamA != "" {
			s.teamAJersey = teamA
		}
		if teamB != "" {
			s.teamBJersey = teamB
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
