package experiments

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"gambit/experiments/metrics"
	"gambit/searcher"
)

var goroutineCounts = []int{1, 2, 4, 8, 16}

// RunSpeedupExperiment searches every benchmark position at the given depth
// with an increasing number of root workers. Scores must not depend on the
// worker count; the durations show how far splitting the root moves actually
// helps.
func RunSpeedupExperiment(maxDepth int) {
	log.Info().Msgf("starting speedup experiment at depth %d...", maxDepth)

	var records []metrics.SearchRecord
	for pi, fen := range positions {
		log.Info().Msgf("searching position %d of %d...", pi+1, len(positions))

		baseline := searchPosition(fen,
			searcher.WithMaxDepth(maxDepth))
		records = append(records, baseline)

		for _, goroutines := range goroutineCounts[1:] {
			record := searchPosition(fen,
				searcher.WithMaxDepth(maxDepth),
				searcher.WithGoroutines(goroutines))
			if record.Score != baseline.Score {
				log.Warn().Msgf("parallel search scored %q at %v, sequential at %v",
					fen, record.Score, baseline.Score)
			}
			records = append(records, record)
		}

		durations := lo.Map(records[len(records)-len(goroutineCounts):],
			func(r metrics.SearchRecord, _ int) string { return r.Duration.String() })
		log.Info().
			Ints("goroutines", goroutineCounts).
			Strs("durations", durations).
			Msgf("position %d searched", pi+1)
	}

	storeSearchRecords("speedup", records)
	log.Info().Msg("completed speedup experiment")
}
