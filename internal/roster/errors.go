package roster

import "errors"

// Sentinel kinds for roster validation errors.
var (
	ErrInvalidRank = errors.New("invalid rank value")
)
