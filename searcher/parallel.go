package searcher

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"gambit/game"
)

// parallelRoot splits the root moves across workers. The first move is
// searched serially with a full window to seed the shared bound; workers then
// claim the remaining moves one index at a time, re-reading the bound as they
// go. The bound only ever tightens, so a worker can never loosen another's
// result, and the returned score matches a sequential search exactly. Tie
// resolution among equal-best moves may differ between runs.
func (m *Minimax) parallelRoot(state game.State, moves []game.Move, depth int) (game.Move, game.Score) {
	m.metrics.AddNode()
	role := state.Role()

	best := m.search(state.Play(moves[0]), depth-1, 1, negInfinity, infinity)
	bestIndex := 0

	var mu sync.Mutex
	next := 1

	var g errgroup.Group
	workers := m.goroutines
	if remaining := len(moves) - 1; workers > remaining {
		workers = remaining
	}
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				mu.Lock()
				index := next
				next++
				bound := best
				mu.Unlock()
				if index >= len(moves) {
					return nil
				}

				alpha, beta := negInfinity, infinity
				if m.pruning {
					if role == game.Maximizer {
						alpha = bound
					} else {
						beta = bound
					}
				}
				score := m.search(state.Play(moves[index]), depth-1, 1, alpha, beta)

				mu.Lock()
				// Strict improvement only: with a narrowed window an equal
				// score can be a bound, not an exact value.
				if (role == game.Maximizer && score > best) ||
					(role == game.Minimizer && score < best) {
					best = score
					bestIndex = index
				}
				mu.Unlock()
			}
		})
	}
	_ = g.Wait() // workers return no errors

	return moves[bestIndex], best
}
