package searcher

import (
	"github.com/rs/zerolog/log"

	"gambit/game"
)

// searchRoot searches every root move at the given depth and picks the best
// per the tie-break policy. The root keeps its own loop rather than reusing
// search so the chosen move can be reported alongside the score.
func (m *Minimax) searchRoot(state game.State, moves []game.Move, depth int) (game.Move, game.Score) {
	if m.goroutines > 1 && len(moves) > 1 {
		return m.parallelRoot(state, moves, depth)
	}

	m.metrics.AddNode()
	role := state.Role()
	alpha, beta := negInfinity, infinity

	// TieBreakRandom keeps the full window: a root move equal to the running
	// best must return its exact score to be recognized as a tie.
	narrow := m.pruning && m.tieBreak != TieBreakRandom

	best := negInfinity
	if role == game.Minimizer {
		best = infinity
	}
	candidates := make([]int, 0, 1)

	for i, move := range moves {
		score := m.search(state.Play(move), depth-1, 1, alpha, beta)
		switch {
		case role == game.Maximizer && score > best,
			role == game.Minimizer && score < best:
			best = score
			candidates = append(candidates[:0], i)
		case score == best && m.tieBreak == TieBreakRandom:
			candidates = append(candidates, i)
		}
		if narrow {
			if role == game.Maximizer && best > alpha {
				alpha = best
			} else if role == game.Minimizer && best < beta {
				beta = best
			}
		}
	}

	return moves[m.tieBreak.pick(candidates)], best
}

// search returns the minimax value of state searched depth plies deep within
// the (alpha, beta) window, from the Maximizer's perspective. ply is the
// distance from the root, used to prefer nearer forced wins. Each call frame
// exclusively owns its state and bounds; nothing is shared across siblings.
func (m *Minimax) search(state game.State, depth, ply int, alpha, beta game.Score) game.Score {
	m.metrics.AddNode()

	if outcome := state.Outcome(); outcome != game.Ongoing {
		// Exact terminal score. Never second-guessed by the heuristic.
		return game.TerminalScore(outcome, ply)
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(state)
	}

	moves := orderedMoves(state)
	if len(moves) == 0 {
		// The oracle claims the game is still on yet offers no moves. Score
		// the dead end as a draw instead of searching an empty branch.
		log.Warn().Uint64("state", uint64(state.Hash())).Msg("non-terminal state generated no legal moves")
		return game.DrawScore
	}

	if state.Role() == game.Maximizer {
		best := negInfinity
		for _, move := range moves {
			score := m.search(state.Play(move), depth-1, ply+1, alpha, beta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if m.pruning && alpha >= beta {
				m.metrics.AddCutoff()
				break // beta cutoff: the Minimizer above never enters this branch
			}
		}
		return best
	}

	best := infinity
	for _, move := range moves {
		score := m.search(state.Play(move), depth-1, ply+1, alpha, beta)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break // alpha cutoff
		}
	}
	return best
}
