package chess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/game"
)

const (
	// Fool's mate, White to move and mated.
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// Bare-rook stalemate pattern, Black to move with no legal moves.
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func TestNewStateStartingPosition(t *testing.T) {
	s := NewState()

	require.Equal(t, game.Maximizer, s.Role(), "White moves first")
	require.Equal(t, game.Ongoing, s.Outcome())
	require.Len(t, s.LegalMoves(), 20, "expected the 20 standard opening moves")
}

func TestPlayDoesNotMutate(t *testing.T) {
	s := NewState()
	before := s.FEN()

	mv, err := s.ParseMove("e2e4")
	require.NoError(t, err)
	next := s.Play(mv)

	require.Equal(t, before, s.FEN(), "expected Play to leave the receiver unchanged")
	require.Equal(t, game.Minimizer, next.Role(), "expected the turn to pass to Black")
}

func TestOutcomeCheckmate(t *testing.T) {
	s, err := FromFEN(foolsMateFEN)
	require.NoError(t, err)

	require.Equal(t, game.MinimizerWin, s.Outcome(), "White is mated, so Black wins")
	require.Empty(t, s.LegalMoves())
}

func TestOutcomeStalemate(t *testing.T) {
	s, err := FromFEN(stalemateFEN)
	require.NoError(t, err)

	require.Equal(t, game.Draw, s.Outcome())
	require.Empty(t, s.LegalMoves())
}

func TestFromFENRejectsGarbage(t *testing.T) {
	_, err := FromFEN("not a position")
	require.Error(t, err)
}

func TestParseMove(t *testing.T) {
	s := NewState()

	t.Run("uci", func(t *testing.T) {
		mv, err := s.ParseMove("e2e4")
		require.NoError(t, err)
		require.Equal(t, "e2e4", mv.String())
	})

	t.Run("algebraic", func(t *testing.T) {
		mv, err := s.ParseMove("Nf3")
		require.NoError(t, err)
		require.Equal(t, "g1f3", mv.String())
	})

	t.Run("illegal", func(t *testing.T) {
		_, err := s.ParseMove("e2e5")
		require.Error(t, err)
	})

	t.Run("gibberish", func(t *testing.T) {
		_, err := s.ParseMove("zz")
		require.Error(t, err)
	})
}

func TestHash(t *testing.T) {
	s := NewState()
	require.Equal(t, s.Hash(), NewState().Hash(), "expected a stable hash for equal positions")

	mv, err := s.ParseMove("e2e4")
	require.NoError(t, err)
	next := s.Play(mv)
	require.NotEqual(t, s.Hash(), next.Hash(), "expected different positions to hash apart")
}
