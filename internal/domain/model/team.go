package model

// TeamState accumulates one team's roster during a constructive pass.
// Total always equals the sum of ranks held across both role collections;
// the placement policy is the sole mutator.
type TeamState struct {
	Forwards []Player
	Defence  []Player
	Total    int
}

// NewTeamState returns an empty accumulator.
func NewTeamState() *TeamState {
	return &TeamState{}
}

// Size returns the number of players currently held.
func (t *TeamState) Size() int {
	return len(t.Forwards) + len(t.Defence)
}

// Players returns the team's members, forwards first. The returned slice is
// freshly allocated; exporters may reorder it freely.
func (t *TeamState) Players() []Player {
	out := make([]Player, 0, t.Size())
	out = append(out, t.Forwards...)
	out = append(out, t.Defence...)
	return out
}

// Partition is a finished two-team split. Each constructor attempt produces
// a fresh Partition with its own TeamStates, so the search driver can retain
// the best one by reference without deep copying.
type Partition struct {
	TeamA *TeamState
	TeamB *TeamState

	// Diff is the absolute difference between the two team totals, the
	// objective the search minimizes.
	Diff int

	// Overflows counts fallback placements made while building this
	// partition. Diagnostic only; it never enters the objective.
	Overflows int
}

// Size returns the combined player count across both teams.
func (p Partition) Size() int {
	return p.TeamA.Size() + p.TeamB.Size()
}
