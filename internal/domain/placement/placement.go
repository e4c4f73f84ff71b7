// Package placement holds the rules for admitting players onto a team.
package placement

import (
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
)

// Default roster composition per team.
const (
	DefaultForwardsTarget = 6
	DefaultDefenceTarget  = 4
)

// Targets is the fixed positional composition of one team. It is passed
// explicitly wherever placement decisions are made so concurrent searches
// with different shapes never interfere.
type Targets struct {
	Forwards int
	Defence  int
}

// DefaultTargets returns the standard 6-forward, 4-defence shape.
func DefaultTargets() Targets {
	return Targets{Forwards: DefaultForwardsTarget, Defence: DefaultDefenceTarget}
}

// CanAdd reports whether team still has room for role. It never mutates
// team. Flex is not a collection: callers resolve Flex to Forward or
// Defence before asking, and opaque roles are always rejected here.
func (t Targets) CanAdd(team *model.TeamState, role model.Role) bool {
	switch role {
	case model.RoleForward:
		return len(team.Forwards) < t.Forwards
	case model.RoleDefence:
		return len(team.Defence) < t.Defence
	default:
		return false
	}
}

// Assign commits p to team under role and bumps the running total. It is
// the only mutation path into TeamState. Callers are expected to have
// checked CanAdd, except on the fallback path where the capacity target is
// deliberately relaxed.
func (t Targets) Assign(team *model.TeamState, p model.Player, role model.Role) {
	if role == model.RoleDefence {
		team.Defence = append(team.Defence, p)
	} else {
		team.Forwards = append(team.Forwards, p)
	}
	team.Total += p.Rank
}
