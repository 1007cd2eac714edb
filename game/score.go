package game

// Score is a totally ordered evaluation value from the Maximizer's
// perspective. Heuristic scores live well inside the win/loss sentinels so
// that proven terminal outcomes always dominate them.
type Score float64

const (
	// WinScore is a forced win for the Maximizer at the node itself.
	WinScore Score = 100000
	// LossScore is a forced win for the Minimizer.
	LossScore Score = -WinScore
	// DrawScore is the neutral value for drawn terminals.
	DrawScore Score = 0

	// WinThreshold bounds heuristic evaluations from above: any score at or
	// beyond it is a mate score. Mirrored by LossThreshold below.
	WinThreshold  Score = WinScore - 1000
	LossThreshold Score = -WinThreshold
)

// WinIn returns the score of a forced Maximizer win ply half-moves from the
// root. Nearer mates score higher, so the search prefers the shortest one.
func WinIn(ply int) Score {
	return WinScore - Score(ply)
}

// LossIn returns the score of a forced Minimizer win ply half-moves from the
// root.
func LossIn(ply int) Score {
	return LossScore + Score(ply)
}

// TerminalScore converts a terminal outcome into its exact score, given the
// ply distance from the search root.
func TerminalScore(o Outcome, ply int) Score {
	switch o {
	case MaximizerWin:
		return WinIn(ply)
	case MinimizerWin:
		return LossIn(ply)
	default:
		return DrawScore
	}
}

// Decisive reports whether a score proves a forced win or loss rather than a
// heuristic preference.
func (s Score) Decisive() bool {
	return s >= WinThreshold || s <= LossThreshold
}
