package experiments

import (
	"time"

	"reversi/engine"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Goroutines int
	Moves      int
	Nodes      int
	Duration   time.Duration // Total search time
}

// NodesPerSecond is the search throughput over all moves.
func (t Throughput) NodesPerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Nodes) / t.Duration.Seconds()
}

// RunThroughputExperiment plays one self-play game per goroutine count and measures how
// fast the search visits positions.
func RunThroughputExperiment(depth int, goroutines []int) []Throughput {
	results := make([]Throughput, 0, len(goroutines))

	log.Info().Msgf("starting throughput experiment at depth %d...", depth)

	for _, g := range goroutines {
		newAgent := func() agent.Agent {
			return agent.NewMinimaxAgent(searcher.NewMinimax(
				searcher.WithDepth(depth),
				searcher.WithGoroutines(g),
				searcher.WithMetrics(),
			))
		}

		_, _, moveMetrics := engine.LocalEngine(newAgent(), newAgent()).Run()

		result := Throughput{Goroutines: g, Moves: len(moveMetrics)}
		for _, mm := range moveMetrics {
			result.Nodes += mm.Nodes
			result.Duration += mm.Duration
		}
		results = append(results, result)

		log.Info().Msgf("goroutines=%d moves=%d nodes=%d nodes/s=%.0f", g, result.Moves, result.Nodes, result.NodesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return results
}
