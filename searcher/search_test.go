package searcher

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/game"
)

// referenceMinimax is an independent exhaustive minimax, the oracle the
// pruned search is checked against.
func referenceMinimax(s *toyState, depth, ply int) game.Score {
	if s.outcome != game.Ongoing {
		return game.TerminalScore(s.outcome, ply)
	}
	if depth == 0 {
		return s.value
	}
	moves := s.moves
	if len(moves) == 0 {
		return game.DrawScore
	}

	best := game.Score(0)
	for i, move := range moves {
		score := referenceMinimax(s.next[move.String()], depth-1, ply+1)
		if i == 0 ||
			(s.role == game.Maximizer && score > best) ||
			(s.role == game.Minimizer && score < best) {
			best = score
		}
	}
	return best
}

func referenceBestMove(s *toyState, depth int) (game.Move, game.Score) {
	var bestMove game.Move
	var best game.Score
	for i, move := range s.moves {
		score := referenceMinimax(s.next[move.String()], depth-1, 1)
		if i == 0 ||
			(s.role == game.Maximizer && score > best) ||
			(s.role == game.Minimizer && score < best) {
			best = score
			bestMove = move
		}
	}
	return bestMove, best
}

func TestSearchMatchesExhaustiveMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for seed := 0; seed < 25; seed++ {
		for _, role := range []game.Role{game.Maximizer, game.Minimizer} {
			root := randomTree(rng, role, 4, 3)
			if root.outcome != game.Ongoing {
				continue
			}
			wantMove, wantScore := referenceBestMove(root, 4)

			m := NewMinimax(toyEvaluate, WithMaxDepth(4))
			result, err := m.FindBestMove(context.Background(), root)

			require.NoError(t, err)
			require.Equal(t, wantScore, result.Score,
				"alpha-beta must return the exhaustive minimax score")
			require.Equal(t, wantMove, result.Move,
				"alpha-beta must return the exhaustive minimax move")
		}
	}
}

func TestPruningDoesNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for seed := 0; seed < 25; seed++ {
		root := randomTree(rng, game.Maximizer, 4, 3)
		if root.outcome != game.Ongoing {
			continue
		}

		pruned := NewMinimax(toyEvaluate, WithMaxDepth(4), WithMetrics())
		full := NewMinimax(toyEvaluate, WithMaxDepth(4), WithoutPruning(), WithMetrics())

		prunedResult, err := pruned.FindBestMove(context.Background(), root)
		require.NoError(t, err)
		fullResult, err := full.FindBestMove(context.Background(), root)
		require.NoError(t, err)

		require.Equal(t, fullResult.Score, prunedResult.Score,
			"pruning may only change the node count, never the score")
		require.Equal(t, fullResult.Move, prunedResult.Move,
			"pruning may only change the node count, never the move")
		require.LessOrEqual(t, prunedResult.Metric.Nodes, fullResult.Metric.Nodes,
			"pruning should never visit more nodes")
	}
}

func TestSearchLeafCounting(t *testing.T) {
	root := branch(game.Maximizer, 0,
		child{"a", leaf(1)},
		child{"b", leaf(2)},
		child{"c", leaf(3)},
	)

	m := NewMinimax(toyEvaluate, WithMaxDepth(1), WithMetrics())
	result, err := m.FindBestMove(context.Background(), root)

	require.NoError(t, err)
	require.Equal(t, 3, result.Metric.Leaves, "every leaf should be evaluated once")
	require.Equal(t, 4, result.Metric.Nodes, "root plus three leaves")
}
