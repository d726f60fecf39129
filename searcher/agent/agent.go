package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Agent interface {
	// FindMove returns a move for the active side and performance metrics (if collected)
	// from the search. It must only be called while the game is in progress.
	FindMove(state *game.GameState) (game.Coord, metrics.SearchMetric)
	Name() string
}
