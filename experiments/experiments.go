package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"gambit/experiments/metrics"
	"gambit/game/chess"
	"gambit/searcher"
)

// Benchmark positions: opening, early middlegame, a forced mate, and a
// pawn endgame.
var positions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2",
	"8/8/8/4k3/8/8/4P3/4K3 w - - 0 1",
}

// RunPruningExperiment searches each benchmark position twice at the given
// depth, with and without alpha-beta, and stores both records. Scores must
// agree pair by pair; only the node counts may differ.
func RunPruningExperiment(maxDepth int) {
	log.Info().Msgf("starting pruning experiment at depth %d...", maxDepth)

	var records []metrics.SearchRecord
	for pi, fen := range positions {
		log.Info().Msgf("searching position %d of %d...", pi+1, len(positions))

		pruned := searchPosition(fen,
			searcher.WithMaxDepth(maxDepth))
		full := searchPosition(fen,
			searcher.WithMaxDepth(maxDepth), searcher.WithoutPruning())
		if pruned.Score != full.Score {
			panic(fmt.Sprintf("pruning changed the score for %q: %v vs %v",
				fen, pruned.Score, full.Score))
		}
		records = append(records, pruned, full)

		log.Info().Msgf("position %d: %d nodes pruned vs %d nodes full",
			pi+1, pruned.Nodes, full.Nodes)
	}

	storeSearchRecords("pruning", records)
	log.Info().Msg("completed pruning experiment")
}

// RunDepthExperiment searches sampled benchmark positions at every depth from
// 1 to maxDepth to show how the tree grows per ply.
func RunDepthExperiment(maxDepth, samples int) {
	log.Info().Msgf("starting depth experiment up to depth %d...", maxDepth)

	sampled := make([]string, len(positions))
	copy(sampled, positions)
	rand.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	if samples > 0 && samples < len(sampled) {
		sampled = sampled[:samples]
	}

	var records []metrics.SearchRecord
	for _, fen := range sampled {
		for depth := 1; depth <= maxDepth; depth++ {
			records = append(records, searchPosition(fen,
				searcher.WithMaxDepth(depth)))
		}
	}

	log.Info().Ints("nodes", nodeCounts(records)).Msg("nodes searched per depth")
	storeSearchRecords("depth", records)
	log.Info().Msg("completed depth experiment")
}

// searchPosition runs one metered search over a FEN and flattens the result
// into a record.
func searchPosition(fen string, options ...searcher.Option) metrics.SearchRecord {
	state, err := chess.FromFEN(fen)
	if err != nil {
		panic(fmt.Sprintf("bad benchmark position %q: %v", fen, err))
	}

	options = append(options, searcher.WithMetrics())
	m := searcher.NewMinimax(chess.Evaluate, options...)
	result, err := m.FindBestMove(context.Background(), state)
	if err != nil {
		panic(fmt.Sprintf("search failed on %q: %v", fen, err))
	}

	return metrics.SearchRecord{
		Position:     fen,
		Score:        float64(result.Score),
		Move:         result.Move.String(),
		SearchMetric: result.Metric,
	}
}

func storeSearchRecords(name string, records []metrics.SearchRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	err = writer.WriteSearchRecords(records)
	if err != nil {
		panic(fmt.Sprintf("failed to write search records: %v", err))
	}
	log.Info().Msgf("stored %d search records", len(records))
}

// nodeCounts is a convenience for eyeballing pruning savings in logs.
func nodeCounts(records []metrics.SearchRecord) []int {
	return lo.Map(records, func(r metrics.SearchRecord, _ int) int {
		return r.Nodes
	})
}
