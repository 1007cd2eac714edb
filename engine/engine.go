package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gambit/experiments/metrics"
	"gambit/game"
)

// MaxMoves caps games that never reach a terminal state.
const MaxMoves = 512

// Agent produces a move for the side to move.
type Agent interface {
	FindMove(ctx context.Context, state game.State) (game.Move, metrics.SearchMetric, error)
}

// Engine drives a game between two agents, one per role.
type Engine struct {
	State  game.State
	Agents map[game.Role]Agent
}

func New(state game.State, maximizer, minimizer Agent) *Engine {
	if maximizer == nil || minimizer == nil {
		panic("engine: both agents are required")
	}
	return &Engine{
		State: state,
		Agents: map[game.Role]Agent{
			game.Maximizer: maximizer,
			game.Minimizer: minimizer,
		},
	}
}

// Run loops agents against each other until the game ends, the move cap is
// hit, or the context is canceled. It returns the final outcome together
// with game and per-move metrics.
func (e *Engine) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Stringer("role", e.State.Role()).Msg("game started")

	step := 1
	for e.State.Outcome() == game.Ongoing && step <= MaxMoves {
		if ctx.Err() != nil {
			break
		}

		role := e.State.Role()
		move, metric, err := e.Agents[role].FindMove(ctx, e.State)
		if err != nil {
			return game.Ongoing, metrics.GameMetric{}, moveMetrics,
				fmt.Errorf("agent for %s on step %d: %w", role, step, err)
		}

		log.Info().
			Int("step", step).
			Stringer("role", role).
			Stringer("move", move).
			Msg("move played")

		e.State = e.State.Play(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Role:         role.String(),
			Move:         move.String(),
			SearchMetric: metric,
		})
		step++
	}

	outcome := e.State.Outcome()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Outcome:    outcome.String(),
		TotalMoves: step - 1,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}
	log.Info().Stringer("outcome", outcome).Int("moves", step-1).Msg("game over")
	return outcome, gameMetric, moveMetrics, nil
}
