// Package model contains domain models passed between layers.
package model

import "strings"

// Role is a player's positional category. Beyond the three known roles,
// arbitrary values survive parsing as opaque roles: they never match the
// Forward/Defence checks, so such players are only ever placed through the
// constructor's fallback path.
type Role string

// Known roles.
const (
	RoleForward Role = "F"
	RoleDefence Role = "D"
	RoleFlex    Role = "FLEX"
)

// ParseRole normalizes a raw position literal (trimmed, case-insensitive)
// into a Role. Unrecognized literals pass through as-is after normalization.
func ParseRole(raw string) Role {
	switch s := strings.ToUpper(strings.TrimSpace(raw)); s {
	case "F", "FWD", "FORWARD":
		return RoleForward
	case "D", "DEF", "DEFENCE", "DEFENSE":
		return RoleDefence
	case "FLEX":
		return RoleFlex
	default:
		return Role(s)
	}
}

// Player represents one selected roster row. Immutable once constructed;
// the same Player values are shared read-only across all search attempts.
type Player struct {
	Name string // opaque display name
	Rank int    // skill magnitude, higher is stronger
	Role Role   // positional category
}
