package workbook

// Option applies a configuration option to the Writer.
type Option func(*Writer)

// WithTeamNames sets the sheet names for the two team tabs.
func WithTeamNames(teamA, teamB string) Option {
	return func(w *Writer) {
		if teamA != "" {
			w.teamAName = teamA
		}
		if teamB != "" {
			w.teamBName = teamB
		}
	}
}

// WithJerseys sets the jersey labels written on each team's rows.
func WithJerseys(teamA, teamB string) Option {
	return func(w *Writer) {
		if teamA != "" {
			w.teamAJersey = teamA
		}
		if teamB != "" {
			w.teamBJersey = teamB
		}
	}
}
