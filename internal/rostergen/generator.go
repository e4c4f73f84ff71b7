// Package rostergen generates synthetic roster spreadsheets for exercising
// the balancer end to end.
package rostergen

import (
	"fmt"
	"math/rand"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/roster"
)

// Default generation parameters.
const (
	defaultPlayers       = 20
	defaultMinRank       = 1
	defaultMaxRank       = 10
	defaultForwardShare  = 0.5
	defaultDefenceShare  = 0.3
	defaultSelectedShare = 0.9
)

// Generator produces synthetic roster records. The role mix splits between
// forwards, defence and flex by the configured shares; ranks draw uniformly
// from the configured range.
type Generator struct {
	players       int
	minRank       int
	maxRank       int
	forwardShare  float64
	defenceShare  float64
	selectedShare float64
	rng           *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithPlayers sets how many roster rows to generate.
func WithPlayers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.players = n
		}
	}
}

// WithRankRange sets the inclusive rank range.
func WithRankRange(minRank, maxRank int) Option {
	return func(g *Generator) {
		if minRank > 0 && maxRank >= minRank {
			g.minRank = minRank
			g.maxRank = maxRank
		}
	}
}

// WithRoleMix sets the forward and defence shares; the remainder is flex.
func WithRoleMix(forward, defence float64) Option {
	return func(g *Generator) {
		if forward >= 0 && defence >= 0 && forward+defence <= 1 {
			g.forwardShare = forward
			g.defenceShare = defence
		}
	}
}

// WithSelectedShare sets the fraction of rows marked Selected.
func WithSelectedShare(share float64) Option {
	return func(g *Generator) {
		if share >= 0 && share <= 1 {
			g.selectedShare = share
		}
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic data only
	}
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		players:       defaultPlayers,
		minRank:       defaultMinRank,
		maxRank:       defaultMaxRank,
		forwardShare:  defaultForwardShare,
		defenceShare:  defaultDefenceShare,
		selectedShare: defaultSelectedShare,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // synthetic data only
	}

	return g
}

// Generate produces the roster rows.
func (g *Generator) Generate() []roster.Record {
	records := make([]roster.Record, g.players)
	for i := range records {
		records[i] = roster.Record{
			Selected: g.selected(),
			Name:     fmt.Sprintf("Player %02d", i+1),
			Rank:     fmt.Sprint(g.minRank + g.rng.Intn(g.maxRank-g.minRank+1)),
			Position: g.position(),
		}
	}
	return records
}

func (g *Generator) selected() string {
	if g.rng.Float64() < g.selectedShare {
		return "TRUE"
	}
	return ""
}

func (g *Generator) position() string {
	switch r := g.rng.Float64(); {
	case r < g.forwardShare:
		return string(model.RoleForward)
	case r < g.forwardShare+g.defenceShare:
		return string(model.RoleDefence)
	default:
		return string(model.RoleFlex)
	}
}
