package searcher

import (
	"fmt"
	"sync"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher over a static evaluator. Black maximizes
// and White minimizes. A Minimax is not safe for concurrent ChooseMove calls.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluator
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines fans root moves out over a number of goroutines.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEPTH,
		goroutines: 1,
		evaluate:   game.Evaluate,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// ChooseMove returns the best move for the side to move in state. It panics when there is
// no legal move: callers must not ask for a move in a finished game.
func ChooseMove(state *game.GameState, player game.Color, depth int) game.Coord {
	if depth <= 0 {
		panic(fmt.Sprintf("search depth must be positive, got %d", depth))
	}
	move, _ := NewMinimax(WithDepth(depth)).ChooseMove(state, player)
	return move
}

// ChooseMove searches state to the configured depth and returns the chosen move with the
// search metrics. The side that moves is always the state's active side.
func (m *Minimax) ChooseMove(state *game.GameState, player game.Color) (game.Coord, metrics.SearchMetric) {
	if len(state.LegalMoves()) == 0 {
		panic("cannot choose a move: no legal moves")
	}
	if player != state.Active() {
		log.Warn().Msgf("searching for %s but %s is to move", player, state.Active())
	}

	m.metrics.Start(m.goroutines, m.depth)
	var move game.Coord
	var found bool
	var value int
	if m.goroutines > 1 {
		move, found, value = m.searchParallel(state, m.depth)
	} else {
		move, found, value = m.Search(state, -Infinity, Infinity, m.depth)
	}
	if !found {
		panic("search returned no move at the root")
	}
	metric := m.metrics.Complete(value)

	log.Debug().Msgf("%s plays %v with value %d (nodes=%d cutoffs=%d)", state.Active(), move, value, metric.Nodes, metric.Cutoffs)
	return move, metric
}

// Search runs alpha-beta from state. It returns the best move when one was found inside the
// window, and the value of the position. A cutoff returns only the bound.
func (m *Minimax) Search(state *game.GameState, alpha, beta, depth int) (game.Coord, bool, int) {
	m.metrics.AddNode()
	if depth <= 0 || state.Active() == game.Empty {
		m.metrics.AddLeaf()
		return game.Coord{}, false, m.evaluate(state)
	}

	player := state.Active()
	var best game.Coord
	found := false

	for _, move := range state.LegalMoves() {
		child := play(state, move)
		_, _, score := m.Search(child, alpha, beta, depth-1)

		if player == game.Black { // Max
			if score > alpha {
				alpha = score
				best, found = move, true
				if alpha >= beta {
					m.metrics.AddCutoff()
					return game.Coord{}, false, alpha
				}
			}
		} else { // Min
			if score < beta {
				beta = score
				best, found = move, true
				if beta <= alpha {
					m.metrics.AddCutoff()
					return game.Coord{}, false, beta
				}
			}
		}
	}

	if player == game.Black {
		return best, found, alpha
	}
	return best, found, beta
}

// searchParallel searches every root move with the full window on its own clone and reduces
// the results in move order, which picks the same move and value as the sequential search.
func (m *Minimax) searchParallel(state *game.GameState, depth int) (game.Coord, bool, int) {
	m.metrics.AddNode()
	moves := state.LegalMoves()
	scores := make([]int, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				child := play(state, moves[i])
				_, _, scores[i] = m.Search(child, -Infinity, Infinity, depth-1)
			}
		}()
	}

	wg.Wait()

	return reduce(state.Active(), moves, scores)
}

// reduce picks the first move with the best score for player.
func reduce(player game.Color, moves []game.Coord, scores []int) (game.Coord, bool, int) {
	var best game.Coord
	found := false
	value := Infinity
	if player == game.Black {
		value = -Infinity
	}
	for i, score := range scores {
		if (player == game.Black && score > value) || (player == game.White && score < value) {
			value = score
			best, found = moves[i], true
		}
	}
	return best, found, value
}

func play(state *game.GameState, move game.Coord) *game.GameState {
	child, result := state.Play(move, state.Active())
	if result.Status == game.Rejected {
		panic(fmt.Sprintf("legal move %v rejected", move))
	}
	return child
}
