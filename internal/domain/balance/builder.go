// Package balance implements the two-team partition search: a greedy
// constructor that places players one at a time into whichever legal slot
// minimizes the running skill gap, driven by repeated randomized attempts
// that keep the best partition seen.
package balance

import (
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
)

// slot is one candidate (team, role) placement.
type slot struct {
	team *model.TeamState
	role model.Role
}

// buildPartition runs one greedy constructive pass over players in the given
// order and returns a finished Partition with fresh TeamStates.
//
// Per player the candidate slots are enumerated team A first, and Forward
// before Defence when a Flex player offers both on the same team. If no slot
// is legal the full four (team, role) combinations are offered with the
// capacity target relaxed for that single placement; each such relaxation is
// counted in Partition.Overflows. The slot with the smallest projected
// |totalA - totalB| wins, first encountered on ties. Placements are never
// revisited within a pass.
func buildPartition(players []model.Player, targets placement.Targets) model.Partition {
	teamA := model.NewTeamState()
	teamB := model.NewTeamState()
	overflows := 0

	options := make([]slot, 0, 4)

	for _, p := range players {
		options = options[:0]

		for _, team := range []*model.TeamState{teamA, teamB} {
			switch p.Role {
			case model.RoleForward:
				if targets.CanAdd(team, model.RoleForward) {
					options = append(options, slot{team, model.RoleForward})
				}
			case model.RoleDefence:
				if targets.CanAdd(team, model.RoleDefence) {
					options = append(options, slot{team, model.RoleDefence})
				}
			case model.RoleFlex:
				if targets.CanAdd(team, model.RoleForward) {
					options = append(options, slot{team, model.RoleForward})
				}
				if targets.CanAdd(team, model.RoleDefence) {
					options = append(options, slot{team, model.RoleDefence})
				}
			}
		}

		if len(options) == 0 {
			// Escape valve: the roster shape cannot satisfy the targets, so
			// this one placement ignores the capacity cap. Every player must
			// end up on a team.
			overflows++
			options = append(options,
				slot{teamA, model.RoleForward},
				slot{teamB, model.RoleForward},
				slot{teamA, model.RoleDefence},
				slot{teamB, model.RoleDefence},
			)
		}

		best := options[0]
		bestDiff := projectedDiff(teamA, teamB, options[0], p)
		for _, opt := range options[1:] {
			if d := projectedDiff(teamA, teamB, opt, p); d < bestDiff {
				bestDiff = d
				best = opt
			}
		}

		targets.Assign(best.team, p, best.role)
	}

	return model.Partition{
		TeamA:     teamA,
		TeamB:     teamB,
		Diff:      absDiff(teamA.Total, teamB.Total),
		Overflows: overflows,
	}
}

// projectedDiff is the skill gap that would result from committing p to the
// slot's team, with only that team's total incremented for the trial.
func projectedDiff(teamA, teamB *model.TeamState, s slot, p model.Player) int {
	projA, projB := teamA.Total, teamB.Total
	if s.team == teamA {
		projA += p.Rank
	} else {
		projB += p.Rank
	}
	return absDiff(projA, projB)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
