package balance

import "errors"

// Sentinel kinds for search errors.
var (
	ErrInsufficientPlayers = errors.New("not enough selected players")
	ErrNoAttempts          = errors.New("no search attempts configured")
)
