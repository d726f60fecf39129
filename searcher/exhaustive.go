package searcher

import "reversi/game"

// Exhaustive is plain minimax without pruning. It uses the same move order and tie-break as
// Search, so it returns the same root move and value; it is only useful to check pruning.
func Exhaustive(state *game.GameState, depth int, evaluate game.Evaluator) (game.Coord, bool, int) {
	if depth <= 0 || state.Active() == game.Empty {
		return game.Coord{}, false, evaluate(state)
	}

	moves := state.LegalMoves()
	scores := make([]int, len(moves))
	for i, move := range moves {
		_, _, scores[i] = Exhaustive(play(state, move), depth-1, evaluate)
	}
	return reduce(state.Active(), moves, scores)
}
