package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Coord, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("cannot choose a move: no legal moves")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}

func (a *randomAgent) Name() string {
	return "random"
}
