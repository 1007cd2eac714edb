package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/experiments/metrics"
	"gambit/game"
	"gambit/game/chess"
	"gambit/searcher"
)

// scriptedAgent plays a fixed sequence of moves.
type scriptedAgent struct {
	moves []string
	next  int
}

func (a *scriptedAgent) FindMove(_ context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	if a.next >= len(a.moves) {
		return nil, metrics.SearchMetric{}, errors.New("out of scripted moves")
	}
	mv, err := state.(chess.State).ParseMove(a.moves[a.next])
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	a.next++
	return mv, metrics.SearchMetric{}, nil
}

type failingAgent struct{}

func (failingAgent) FindMove(context.Context, game.State) (game.Move, metrics.SearchMetric, error) {
	return nil, metrics.SearchMetric{}, errors.New("boom")
}

func TestRunPlaysToCheckmate(t *testing.T) {
	white := &scriptedAgent{moves: []string{"f2f3", "g2g4"}}
	black := &scriptedAgent{moves: []string{"e7e5", "d8h4"}}
	e := New(chess.NewState(), white, black)

	outcome, gameMetric, moveMetrics, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.MinimizerWin, outcome)
	require.Equal(t, 4, gameMetric.TotalMoves)
	require.Len(t, moveMetrics, 4)
	require.Equal(t, "d8h4", moveMetrics[3].Move)
}

func TestRunPropagatesAgentError(t *testing.T) {
	e := New(chess.NewState(), failingAgent{}, failingAgent{})

	_, _, _, err := e.Run(context.Background())
	require.ErrorContains(t, err, "boom")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(chess.NewState(), failingAgent{}, failingAgent{})
	outcome, _, moveMetrics, err := e.Run(ctx)
	require.NoError(t, err, "cancellation ends the game without consulting an agent")
	require.Equal(t, game.Ongoing, outcome)
	require.Empty(t, moveMetrics)
}

func TestNewRequiresAgents(t *testing.T) {
	require.Panics(t, func() { New(chess.NewState(), nil, failingAgent{}) })
}

func TestSearchAgentFindsMateInOne(t *testing.T) {
	// Fool's mate one move before the end, Black to play Qh4#.
	state, err := chess.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2")
	require.NoError(t, err)

	black := NewSearchAgent(searcher.NewMinimax(chess.Evaluate, searcher.WithMaxDepth(2)))
	white := failingAgent{}
	e := New(state, white, black)

	outcome, _, moveMetrics, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.MinimizerWin, outcome)
	require.Len(t, moveMetrics, 1)
	require.Equal(t, "d8h4", moveMetrics[0].Move)
}
