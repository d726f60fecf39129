package agent

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the alpha-beta search's choice.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state *game.GameState) (game.Coord, metrics.SearchMetric) {
	return a.minimax.ChooseMove(state, state.Active())
}

func (a minimaxAgent) Name() string {
	return fmt.Sprintf("minimax(depth=%d)", a.minimax.Depth())
}
