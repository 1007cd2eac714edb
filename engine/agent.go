package engine

import (
	"context"

	"gambit/experiments/metrics"
	"gambit/game"
	"gambit/searcher"
)

// SearchAgent plays the move chosen by a minimax searcher.
type SearchAgent struct {
	searcher *searcher.Minimax
}

func NewSearchAgent(m *searcher.Minimax) *SearchAgent {
	return &SearchAgent{searcher: m}
}

func (a *SearchAgent) FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.searcher.FindBestMove(ctx, state)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
