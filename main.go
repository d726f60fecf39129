package main

import (
	"flag"
	"os"
	"time"

	"reversi/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML file with tournament settings")
	games := flag.Int("games", 0, "Games per colour against the random agent")
	depth := flag.Int("depth", 0, "Minimax search depth")
	goroutines := flag.Int("goroutines", 0, "Goroutines searching root moves")
	seed := flag.Uint64("seed", 0, "Seed of the random agent")
	out := flag.String("out", "", "Directory for experiment records")
	throughput := flag.Bool("throughput", false, "Measure search throughput instead of running a tournament")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags override the file
	if *games > 0 {
		cfg.Games = *games
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *goroutines > 0 {
		cfg.Goroutines = *goroutines
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *out != "" {
		cfg.OutputDir = *out
	}

	if *throughput {
		experiments.RunThroughputExperiment(cfg.Depth, []int{1, 2, 4, 8})
		return
	}

	tally, err := experiments.RunTournament(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	log.Info().Msgf("minimax won %d of %d games (%d lost, %d drawn)", tally.AgentWins, tally.Games(), tally.RandomWins, tally.Draws)
}
