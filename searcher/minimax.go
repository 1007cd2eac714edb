package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"gambit/experiments/metrics"
	"gambit/game"
)

// DefaultMaxDepth keeps a freshly constructed searcher playable without any
// tuning.
const DefaultMaxDepth = 3

var (
	infinity    = game.Score(math.Inf(1))
	negInfinity = game.Score(math.Inf(-1))
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax searcher with alpha-beta pruning.
// Every FindBestMove call is an independent search; the searcher keeps no
// state between calls.
type Minimax struct {
	maxDepth   int
	duration   time.Duration
	nodeBudget int
	goroutines int
	pruning    bool
	tieBreak   TieBreak
	evaluate   game.Evaluate
	metrics    metrics.Collector
	collecting bool
}

// WithMaxDepth caps the iterative deepening loop at depth plies. Zero is the
// degenerate configuration: the root is evaluated directly with no search.
func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.maxDepth = depth
		}
	}
}

// WithDuration stops iterative deepening once the budget has elapsed. The
// check runs between completed depths, so the deepest reported result is
// always a fully searched one.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithNodeBudget stops iterative deepening once the searched node count
// passes budget, checked between completed depths.
func WithNodeBudget(budget int) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.nodeBudget = budget
		}
	}
}

// WithGoroutines shards root moves across the given number of workers.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithTieBreak sets the policy for equal-best root moves.
func WithTieBreak(policy TieBreak) Option {
	return func(m *Minimax) {
		m.tieBreak = policy
	}
}

// WithoutPruning disables alpha-beta cutoffs, degrading the search to plain
// minimax. The returned move score is identical either way; only the number
// of visited nodes differs.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithMetrics enables search counters on the returned Result.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
		m.collecting = true
	}
}

func NewMinimax(evaluate game.Evaluate, options ...Option) *Minimax {
	if evaluate == nil {
		panic("searcher: an evaluation function is required")
	}
	m := &Minimax{ // Default values
		maxDepth:   DefaultMaxDepth,
		goroutines: 1,
		pruning:    true,
		tieBreak:   TieBreakFirst,
		evaluate:   evaluate,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.nodeBudget > 0 && !m.collecting {
		// Budget enforcement needs real node counts even when the caller
		// did not ask for metrics.
		m.metrics = metrics.NewCollector()
	}
	return m
}

// Result is what a top-level search produces: the chosen root move, its
// score, and the deepest fully completed depth.
type Result struct {
	Move   game.Move
	Score  game.Score
	Depth  int
	Metric metrics.SearchMetric
}

// FindBestMove runs iterative deepening from depth 1 up to the configured
// maximum and returns the best move of the deepest completed iteration.
// Cancellation and budgets are honored between depths only, so a partial
// iteration never leaks into the result. Calling it on a terminal position
// is an error: the caller owns terminality checks.
func (m *Minimax) FindBestMove(ctx context.Context, state game.State) (Result, error) {
	if outcome := state.Outcome(); outcome != game.Ongoing {
		return Result{}, fmt.Errorf("searcher: root position is already terminal (%s)", outcome)
	}

	m.metrics.Start(m.maxDepth, m.goroutines, m.pruning)

	if m.maxDepth == 0 {
		return Result{Score: m.evaluate(state), Metric: m.metrics.Complete()}, nil
	}

	moves := orderedMoves(state)
	if len(moves) == 0 {
		return Result{}, errors.New("searcher: no legal moves at a non-terminal root")
	}

	start := time.Now()
	var result Result
	for depth := 1; depth <= m.maxDepth; depth++ {
		move, score := m.searchRoot(state, moves, depth)
		result = Result{Move: move, Score: score, Depth: depth}
		m.metrics.SetDepth(depth)
		log.Debug().
			Int("depth", depth).
			Stringer("move", move).
			Float64("score", float64(score)).
			Msg("completed search iteration")

		if score.Decisive() {
			// A forced win or loss is proven; deeper iterations cannot
			// change the game-theoretic answer.
			break
		}
		if m.exhausted(ctx, start) {
			break
		}
	}

	result.Metric = m.metrics.Complete()
	return result, nil
}

func (m *Minimax) exhausted(ctx context.Context, start time.Time) bool {
	if ctx.Err() != nil {
		return true
	}
	if m.duration > 0 && time.Since(start) >= m.duration {
		return true
	}
	if m.nodeBudget > 0 && m.metrics.Nodes() >= m.nodeBudget {
		return true
	}
	return false
}

// orderedMoves prefers the state's own ordering heuristic when it has one.
func orderedMoves(state game.State) []game.Move {
	if orderer, ok := state.(game.MoveOrderer); ok {
		return orderer.OrderedMoves()
	}
	return state.LegalMoves()
}
