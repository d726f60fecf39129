package experiments

import (
	"fmt"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Tally counts tournament results from the minimax agent's point of view.
type Tally struct {
	AgentWins  int
	RandomWins int
	Draws      int
}

func (t Tally) Games() int {
	return t.AgentWins + t.RandomWins + t.Draws
}

// RunTournament plays cfg.Games games with the minimax agent as Black and as many as White
// against the random baseline, and stores the records when an output directory is set.
func RunTournament(cfg Config) (Tally, error) {
	err := cfg.Validate()
	if err != nil {
		return Tally{}, err
	}

	tally := Tally{}
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	random := agent.NewRandomAgent(cfg.Seed)

	log.Info().Msgf("starting tournament of %d games at depth %d...", 2*cfg.Games, cfg.Depth)

	for i := 0; i < cfg.Games; i++ {
		for _, side := range []game.Color{game.Black, game.White} {
			minimax := agent.NewMinimaxAgent(createMinimax(cfg))
			black, white := minimax, random
			if side == game.White {
				black, white = random, minimax
			}

			outcome, gameMetric, moveMetrics := engine.LocalEngine(black, white).Run()
			count++

			switch outcome.Winner() {
			case side:
				tally.AgentWins++
			case side.Opponent():
				tally.RandomWins++
			default:
				tally.Draws++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{ID: count, GameMetric: gameMetric})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			log.Info().Msgf("game %d of %d: minimax as %s, %s (%d-%d)", count, 2*cfg.Games, side, outcome, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
		}
	}

	log.Info().Msgf("completed tournament: minimax %d, random %d, draws %d", tally.AgentWins, tally.RandomWins, tally.Draws)

	if cfg.OutputDir == "" {
		return tally, nil
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "tournament")
	if err != nil {
		return tally, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return tally, err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return tally, err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return tally, nil
}

func createMinimax(cfg Config) *searcher.Minimax {
	return searcher.NewMinimax(
		searcher.WithDepth(cfg.Depth),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithMetrics(),
	)
}
