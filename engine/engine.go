package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// MaxMoves bounds a game: every ply fills one of the cells left empty by the opening.
const MaxMoves = game.Size*game.Size - 4

type Runner interface {
	// Run plays a game till it is over
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
