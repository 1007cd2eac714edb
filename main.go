package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gambit/engine"
	"gambit/experiments"
	"gambit/experiments/metrics"
	"gambit/game"
	"gambit/game/chess"
	"gambit/searcher"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	setupLogger(cfg.logLevel)

	switch cfg.mode {
	case "analyze":
		runAnalyze(cfg)
	case "selfplay":
		runSelfplay(cfg)
	case "play":
		runPlay(cfg)
	case "experiment":
		runExperiment(cfg)
	default:
		log.Fatal().Msgf("unknown mode %q (want analyze, selfplay, play, or experiment)", cfg.mode)
	}
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func runExperiment(cfg config) {
	switch cfg.experiment {
	case "pruning":
		experiments.RunPruningExperiment(cfg.depth)
	case "depth":
		experiments.RunDepthExperiment(cfg.depth, 0)
	case "speedup":
		experiments.RunSpeedupExperiment(cfg.depth)
	case "strength":
		experiments.RunDepthStrengthExperiment(cfg.depth, []int{cfg.depth + 1, cfg.depth + 2})
	case "all":
		experiments.RunPruningExperiment(cfg.depth)
		experiments.RunDepthExperiment(cfg.depth, 0)
		experiments.RunSpeedupExperiment(cfg.depth)
	}
}

// runAnalyze searches a single position and reports the best move.
func runAnalyze(cfg config) {
	state := startingState(cfg)
	m := createSearcher(cfg, true)

	result, err := m.FindBestMove(context.Background(), state)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	fmt.Println(state.Draw())
	fmt.Printf("best move: %s  score: %.1f  depth: %d\n", result.Move, result.Score, result.Depth)
	fmt.Printf("nodes evaluated: %d  branches pruned: %d  time: %s\n",
		result.Metric.Nodes, result.Metric.Cutoffs, result.Metric.Duration)
}

// runSelfplay pits two identically configured searchers against each other.
func runSelfplay(cfg config) {
	white := engine.NewSearchAgent(createSearcher(cfg, false))
	black := engine.NewSearchAgent(createSearcher(cfg, false))

	e := engine.New(startingState(cfg), white, black)
	outcome, gameMetric, _, err := e.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	fmt.Println(e.State.(chess.State).Draw())
	fmt.Printf("%s in %d moves (%s)\n", outcome, gameMetric.TotalMoves, gameMetric.Duration)
}

// runPlay is a console game between a human and the engine.
func runPlay(cfg config) {
	human := &humanAgent{in: bufio.NewScanner(os.Stdin)}
	ai := engine.NewSearchAgent(createSearcher(cfg, false))

	var e *engine.Engine
	if cfg.humanSide == "white" {
		e = engine.New(startingState(cfg), human, ai)
	} else {
		e = engine.New(startingState(cfg), ai, human)
	}

	fmt.Println("Enter moves in UCI (e2e4) or algebraic (e4, Nf3) notation.")
	fmt.Println("Type 'board' to redraw, 'quit' to resign.")

	outcome, _, _, err := e.Run(context.Background())
	if err != nil {
		if errors.Is(err, errQuit) {
			fmt.Println("Game terminated.")
			return
		}
		log.Fatal().Err(err).Msg("game failed")
	}

	fmt.Println(e.State.(chess.State).Draw())
	fmt.Printf("Game over: %s\n", outcome)
}

func startingState(cfg config) chess.State {
	if cfg.fen == "" {
		return chess.NewState()
	}
	state, err := chess.FromFEN(cfg.fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad starting position")
	}
	return state
}

func createSearcher(cfg config, metered bool) *searcher.Minimax {
	options := []searcher.Option{
		searcher.WithMaxDepth(cfg.depth),
	}
	if cfg.moveTime > 0 {
		options = append(options, searcher.WithDuration(cfg.moveTime))
	}
	if cfg.goroutines > 1 {
		options = append(options, searcher.WithGoroutines(cfg.goroutines))
	}
	if !cfg.pruning {
		options = append(options, searcher.WithoutPruning())
	}
	if cfg.tieBreak == "random" {
		options = append(options, searcher.WithTieBreak(searcher.TieBreakRandom))
	}
	if metered {
		options = append(options, searcher.WithMetrics())
	}
	return searcher.NewMinimax(chess.Evaluate, options...)
}

var errQuit = errors.New("player quit")

// humanAgent reads moves from the console.
type humanAgent struct {
	in *bufio.Scanner
}

func (h *humanAgent) FindMove(_ context.Context, state game.State) (game.Move, metrics.SearchMetric, error) {
	cs := state.(chess.State)
	fmt.Println(cs.Draw())
	for {
		fmt.Print("Your move: ")
		if !h.in.Scan() {
			return nil, metrics.SearchMetric{}, errQuit
		}
		text := strings.TrimSpace(h.in.Text())
		switch text {
		case "":
			continue
		case "quit":
			return nil, metrics.SearchMetric{}, errQuit
		case "board":
			fmt.Println(cs.Draw())
			continue
		}

		move, err := cs.ParseMove(text)
		if err != nil {
			fmt.Printf("%v, try again\n", err)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
