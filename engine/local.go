package engine

import (
	"fmt"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State  *game.GameState
	Agents map[game.Color]agent.Agent
}

var _ Runner = (*Engine)(nil)

// LocalEngine sets up a new game between two in-process agents.
func LocalEngine(black, white agent.Agent) *Engine {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	return &Engine{
		State: game.NewGame(),
		Agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run executes the entire game loop until the game is over.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Black:     e.Agents[game.Black].Name(),
		White:     e.Agents[game.White].Name(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s (Black) vs %s (White)", gameMetric.Black, gameMetric.White)

	step := 1
	for !e.State.IsTerminal() {
		if step > MaxMoves {
			panic(fmt.Sprintf("game exceeded %d moves", MaxMoves))
		}
		player := e.State.Active()
		move, searchMetric := e.Agents[player].FindMove(e.State)

		result := e.State.Apply(move, player)
		if result.Status == game.Rejected {
			log.Error().Msgf("%s returned illegal move %v for %s, falling back to the first legal move", e.Agents[player].Name(), move, player)
			move = e.State.LegalMoves()[0]
			result = e.State.Apply(move, player)
		}
		if result.Passed {
			log.Debug().Msgf("%s has no move and passes", player.Opponent())
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			Passed:       result.Passed,
			SearchMetric: searchMetric,
		})
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Outcome = e.State.Outcome()
	gameMetric.BlackDiscs, gameMetric.WhiteDiscs = e.State.Counts()
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves: %s (%d-%d)", gameMetric.TotalMoves, gameMetric.Outcome, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)

	return gameMetric.Outcome, gameMetric, moveMetrics
}
