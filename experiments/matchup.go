package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gambit/engine"
	"gambit/experiments/metrics"
	"gambit/game/chess"
	"gambit/searcher"
)

// NumGames is how many games each matchup plays.
const NumGames = 5

// RunDepthStrengthExperiment pits a baseline depth against deeper searchers
// to measure how extra plies convert into wins.
func RunDepthStrengthExperiment(baselineDepth int, depths []int) {
	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	log.Info().Msg("starting depth strength experiment...")

	for mi, depth := range depths {
		log.Info().Msgf("starting matchup %d of %d: depth %d vs depth %d...",
			mi+1, len(depths), baselineDepth, depth)

		for i := 0; i < NumGames; i++ {
			outcome, gameMetric, moveMetrics := runGame(baselineDepth, depth)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d game %d of %d: %s",
				mi+1, i+1, NumGames, outcome)
		}
	}

	log.Info().Msg("completed depth strength experiment")

	writer, err := metrics.NewWriter("depth_strength")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored game and move records")
}

// runGame executes a single game between two searchers and returns the
// outcome. The random tie-break keeps repeated games from replaying the
// same line.
func runGame(whiteDepth, blackDepth int) (string, metrics.GameMetric, []metrics.MoveMetric) {
	white := engine.NewSearchAgent(createSearcher(whiteDepth))
	black := engine.NewSearchAgent(createSearcher(blackDepth))

	e := engine.New(chess.NewState(), white, black)
	outcome, gameMetric, moveMetrics, err := e.Run(context.Background())
	if err != nil {
		panic(fmt.Sprintf("matchup game failed: %v", err))
	}

	return outcome.String(), gameMetric, moveMetrics
}

func createSearcher(depth int) *searcher.Minimax {
	return searcher.NewMinimax(chess.Evaluate,
		searcher.WithMaxDepth(depth),
		searcher.WithTieBreak(searcher.TieBreakRandom),
		searcher.WithMetrics(),
	)
}
