package game

// GameState represents the dynamic state of a game: the board, whose turn it is and the
// derived counts and legal-move mask. It is a value type; copying it copies the board.
type GameState struct {
	board    Board
	active   Color            // The side to move, Empty once the game is over
	black    int              // Black disc count
	white    int              // White disc count
	legal    [Size][Size]bool // Legal cells for the active side
	lastMove Coord
	hasLast  bool
	outcome  Outcome
}

// NewGame initializes the starting position with Black to move.
func NewGame() *GameState {
	gs := &GameState{
		board:  StartingBoard(),
		active: Black,
		black:  2,
		white:  2,
	}
	gs.analyse()
	return gs
}

// FromBoard builds a state from an arbitrary board with toMove to play. Counts are
// recomputed and passes are resolved the same way they are after a move, so the returned
// state may already be over.
func FromBoard(board Board, toMove Color) *GameState {
	if toMove != Black && toMove != White {
		panic("FromBoard requires Black or White to move")
	}
	gs := &GameState{board: board, active: toMove}
	gs.black, gs.white = board.count()
	switch {
	case gs.black == 0 || gs.white == 0 || gs.black+gs.white == Size*Size:
		gs.finish()
	default:
		gs.advance(toMove)
	}
	return gs
}

// Copy returns an independent copy of the state.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Board returns a copy of the board.
func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) At(c Coord) Color {
	return gs.board.at(c)
}

// Active returns the side to move, or Empty when the game is over.
func (gs *GameState) Active() Color {
	return gs.active
}

// Counts returns the number of Black and White discs.
func (gs *GameState) Counts() (black, white int) {
	return gs.black, gs.white
}

func (gs *GameState) Empties() int {
	return Size*Size - gs.black - gs.white
}

// LastMove returns the most recently placed disc, if any.
func (gs *GameState) LastMove() (Coord, bool) {
	return gs.lastMove, gs.hasLast
}

func (gs *GameState) IsTerminal() bool {
	return gs.outcome != Undecided
}

func (gs *GameState) Outcome() Outcome {
	return gs.outcome
}

// Winner returns the winning side, Empty for a draw or an unfinished game.
func (gs *GameState) Winner() Color {
	return gs.outcome.Winner()
}

// LegalMask returns the legal cells for the active side.
func (gs *GameState) LegalMask() [Size][Size]bool {
	return gs.legal
}

// IsLegal reports whether the active side may play at c.
func (gs *GameState) IsLegal(c Coord) bool {
	return c.InBounds() && gs.legal[c.Row][c.Col]
}

// LegalMoves returns the legal cells for the active side in row-major order.
func (gs *GameState) LegalMoves() []Coord {
	moves := []Coord{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if gs.legal[row][col] {
				moves = append(moves, Coord{row, col})
			}
		}
	}
	return moves
}

// Play applies a move to a copy of the state and returns the copy. The receiver is never modified.
func (gs *GameState) Play(at Coord, player Color) (*GameState, Result) {
	next := gs.Copy()
	return next, next.Apply(at, player)
}

// Apply places a disc for player at the given cell and advances the turn. Illegal moves are
// rejected without changing the state.
func (gs *GameState) Apply(at Coord, player Color) Result {
	if gs.IsTerminal() || player != gs.active || !gs.IsLegal(at) {
		return Result{Status: Rejected}
	}

	gs.board[at.Row][at.Col] = player
	gs.lastMove, gs.hasLast = at, true
	flipped := gs.board.flip(at, player)
	if player == Black {
		gs.black += 1 + flipped
		gs.white -= flipped
	} else {
		gs.white += 1 + flipped
		gs.black -= flipped
	}

	mine, theirs := gs.black, gs.white
	if player == White {
		mine, theirs = theirs, mine
	}

	// A side with no discs left loses outright, even with empty cells remaining
	if theirs == 0 {
		gs.end(winnerOutcome(player))
		return Result{Status: GameOver, Outcome: gs.outcome, Flipped: flipped}
	}
	if mine+theirs == Size*Size {
		gs.finish()
		return Result{Status: GameOver, Outcome: gs.outcome, Flipped: flipped}
	}

	passed := gs.advance(player.Opponent())
	if gs.IsTerminal() {
		return Result{Status: GameOver, Outcome: gs.outcome, Flipped: flipped}
	}
	return Result{Status: Accepted, Flipped: flipped, Passed: passed}
}

// advance hands the turn to next, falling back to the other side when next has no move and
// ending the game when neither side can move. It reports whether next had to pass.
func (gs *GameState) advance(next Color) bool {
	gs.active = next
	if gs.analyse() {
		return false
	}
	gs.active = next.Opponent()
	if gs.analyse() {
		return true
	}
	gs.finish()
	return true
}

// analyse recomputes the legal mask for the active side and reports whether it has a move.
func (gs *GameState) analyse() bool {
	movable := false
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			ok := gs.board.canPlace(Coord{row, col}, gs.active)
			gs.legal[row][col] = ok
			movable = movable || ok
		}
	}
	return movable
}

// finish ends the game by comparing disc counts.
func (gs *GameState) finish() {
	switch {
	case gs.black > gs.white:
		gs.end(BlackWins)
	case gs.white > gs.black:
		gs.end(WhiteWins)
	default:
		gs.end(Draw)
	}
}

func (gs *GameState) end(outcome Outcome) {
	gs.outcome = outcome
	gs.active = Empty
	gs.legal = [Size][Size]bool{}
}

func winnerOutcome(c Color) Outcome {
	switch c {
	case Black:
		return BlackWins
	case White:
		return WhiteWins
	default:
		panic("no outcome for " + c.String())
	}
}
