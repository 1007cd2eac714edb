package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinInPrefersNearerMates(t *testing.T) {
	require.Greater(t, WinIn(1), WinIn(3))
	require.Less(t, LossIn(1), LossIn(3))
	require.Greater(t, WinIn(10), WinThreshold, "mate scores stay above the threshold")
	require.Less(t, LossIn(10), LossThreshold)
}

func TestTerminalScore(t *testing.T) {
	require.Equal(t, WinIn(2), TerminalScore(MaximizerWin, 2))
	require.Equal(t, LossIn(2), TerminalScore(MinimizerWin, 2))
	require.Equal(t, DrawScore, TerminalScore(Draw, 2))
}

func TestScoreDecisive(t *testing.T) {
	require.True(t, WinIn(5).Decisive())
	require.True(t, LossIn(5).Decisive())
	require.False(t, DrawScore.Decisive())
	require.False(t, Score(5000).Decisive())
}

func TestRoleOpponent(t *testing.T) {
	require.Equal(t, Minimizer, Maximizer.Opponent())
	require.Equal(t, Maximizer, Minimizer.Opponent())
}
