package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type config struct {
	mode       string
	experiment string
	fen        string
	humanSide  string
	depth      int
	moveTime   time.Duration
	goroutines int
	pruning    bool
	tieBreak   string
	logLevel   string
}

// loadConfig reads gambit.yaml from the working directory, overridable with
// GAMBIT_* environment variables (e.g. GAMBIT_SEARCH_DEPTH=5).
func loadConfig() (config, error) {
	v := viper.New()
	v.SetConfigName("gambit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("gambit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", "selfplay")
	v.SetDefault("experiment", "all")
	v.SetDefault("fen", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("search.depth", 3)
	v.SetDefault("search.movetime", time.Duration(0))
	v.SetDefault("search.goroutines", 1)
	v.SetDefault("search.pruning", true)
	v.SetDefault("search.tiebreak", "first")
	v.SetDefault("play.human", "white")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
		// No file present: defaults plus environment apply.
	}

	cfg := config{
		mode:       v.GetString("mode"),
		experiment: v.GetString("experiment"),
		fen:        v.GetString("fen"),
		humanSide:  v.GetString("play.human"),
		depth:      clampDepth(v.GetInt("search.depth")),
		moveTime:   v.GetDuration("search.movetime"),
		goroutines: v.GetInt("search.goroutines"),
		pruning:    v.GetBool("search.pruning"),
		tieBreak:   v.GetString("search.tiebreak"),
		logLevel:   v.GetString("log.level"),
	}

	switch cfg.experiment {
	case "all", "pruning", "depth", "speedup", "strength":
	default:
		return config{}, fmt.Errorf("unknown experiment %q (want all, pruning, depth, speedup, or strength)", cfg.experiment)
	}
	switch cfg.tieBreak {
	case "first", "random":
	default:
		return config{}, fmt.Errorf("unknown tiebreak %q (want first or random)", cfg.tieBreak)
	}
	switch cfg.humanSide {
	case "white", "black":
	default:
		return config{}, fmt.Errorf("unknown human side %q (want white or black)", cfg.humanSide)
	}

	return cfg, nil
}

// clampDepth bounds the configured search depth between 1 and 10 plies.
func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > 10 {
		return 10
	}
	return depth
}
